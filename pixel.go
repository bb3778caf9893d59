// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import "image/color"

// Pixel is a fixed-layout pixel type usable with typed views.
// The size of the type must equal the byte count of the view's format.
//
// Multi-byte packed words are stored as byte arrays (little-endian) so that
// pixel types have an alignment of one and can overlay any byte offset.
type Pixel interface {
	comparable
	PixelFormat() PixelFormat
}

// Gray8 is an 8-bit luminance pixel.
type Gray8 uint8

// Gray16 is a 16-bit little-endian luminance pixel.
type Gray16 [2]byte

// Alpha8 is an 8-bit coverage pixel.
type Alpha8 uint8

// BGR565 is a 16-bit little-endian packed pixel: blue in bits 0-4,
// green in bits 5-10, red in bits 11-15.
type BGR565 [2]byte

// BGRA5551 is a 16-bit little-endian packed pixel: blue in bits 0-4,
// green in bits 5-9, red in bits 10-14, alpha in bit 15.
type BGRA5551 [2]byte

// BGRA4444 is a 16-bit little-endian packed pixel: blue in bits 0-3,
// green in bits 4-7, red in bits 8-11, alpha in bits 12-15.
type BGRA4444 [2]byte

// RGB24 is a 24-bit pixel stored as R, G, B.
type RGB24 struct{ R, G, B uint8 }

// BGR24 is a 24-bit pixel stored as B, G, R.
type BGR24 struct{ B, G, R uint8 }

// RGBA32 is a 32-bit pixel stored as R, G, B, A with straight alpha.
type RGBA32 struct{ R, G, B, A uint8 }

// BGRA32 is a 32-bit pixel stored as B, G, R, A with straight alpha.
// It has the same layout as the canonical pixel used for conversions.
type BGRA32 struct{ B, G, R, A uint8 }

// ARGB32 is a 32-bit pixel stored as A, R, G, B with straight alpha.
type ARGB32 struct{ A, R, G, B uint8 }

// RGBA128F is a 128-bit pixel of four float32 channels in [0, 1].
type RGBA128F struct{ R, G, B, A float32 }

func (Gray8) PixelFormat() PixelFormat    { return FormatGray8 }
func (Gray16) PixelFormat() PixelFormat   { return FormatGray16 }
func (Alpha8) PixelFormat() PixelFormat   { return FormatAlpha8 }
func (BGR565) PixelFormat() PixelFormat   { return FormatBGR565 }
func (BGRA5551) PixelFormat() PixelFormat { return FormatBGRA5551 }
func (BGRA4444) PixelFormat() PixelFormat { return FormatBGRA4444 }
func (RGB24) PixelFormat() PixelFormat    { return FormatRGB24 }
func (BGR24) PixelFormat() PixelFormat    { return FormatBGR24 }
func (RGBA32) PixelFormat() PixelFormat   { return FormatRGBA32 }
func (BGRA32) PixelFormat() PixelFormat   { return FormatBGRA32 }
func (ARGB32) PixelFormat() PixelFormat   { return FormatARGB32 }
func (RGBA128F) PixelFormat() PixelFormat { return FormatRGBA128F }

// NewGray16 packs a 16-bit luminance value.
func NewGray16(y uint16) Gray16 { return Gray16{byte(y), byte(y >> 8)} }

// Y returns the luminance value.
func (p Gray16) Y() uint16 { return uint16(p[0]) | uint16(p[1])<<8 }

// NewBGR565 packs 8-bit channels, dropping the low bits.
func NewBGR565(r, g, b uint8) BGR565 {
	v := uint16(b>>3) | uint16(g>>2)<<5 | uint16(r>>3)<<11
	return BGR565{byte(v), byte(v >> 8)}
}

// RGB expands the packed channels to 8 bits.
func (p BGR565) RGB() (r, g, b uint8) {
	v := uint16(p[0]) | uint16(p[1])<<8
	return expand5(uint8(v >> 11)), expand6(uint8(v>>5) & 0x3f), expand5(uint8(v) & 0x1f)
}

// NewBGRA5551 packs 8-bit channels; alpha becomes opaque at 128 and above.
func NewBGRA5551(r, g, b, a uint8) BGRA5551 {
	v := uint16(b>>3) | uint16(g>>3)<<5 | uint16(r>>3)<<10
	if a >= 0x80 {
		v |= 0x8000
	}
	return BGRA5551{byte(v), byte(v >> 8)}
}

// RGBA8 expands the packed channels to 8 bits.
func (p BGRA5551) RGBA8() (r, g, b, a uint8) {
	v := uint16(p[0]) | uint16(p[1])<<8
	if v&0x8000 != 0 {
		a = 0xff
	}
	return expand5(uint8(v>>10) & 0x1f), expand5(uint8(v>>5) & 0x1f), expand5(uint8(v) & 0x1f), a
}

// NewBGRA4444 packs 8-bit channels with rounding.
func NewBGRA4444(r, g, b, a uint8) BGRA4444 {
	v := uint16(reduce4(b)) | uint16(reduce4(g))<<4 | uint16(reduce4(r))<<8 | uint16(reduce4(a))<<12
	return BGRA4444{byte(v), byte(v >> 8)}
}

// RGBA8 expands the packed channels to 8 bits.
func (p BGRA4444) RGBA8() (r, g, b, a uint8) {
	return (p[1] & 0x0f) * 17, (p[0] >> 4) * 17, (p[0] & 0x0f) * 17, (p[1] >> 4) * 17
}

func expand5(v uint8) uint8 { return v<<3 | v>>2 }
func expand6(v uint8) uint8 { return v<<2 | v>>4 }
func reduce4(v uint8) uint8 { return uint8((uint16(v)*15 + 127) / 255) }

// RGBA implements color.Color.
func (p RGBA32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// RGBA implements color.Color.
func (p BGRA32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// RGBA implements color.Color.
func (p ARGB32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// RGBA implements color.Color.
func (p RGB24) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}.RGBA()
}

// RGBA implements color.Color.
func (p BGR24) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}.RGBA()
}

// RGBA implements color.Color.
func (p Gray8) RGBA() (r, g, b, a uint32) {
	return color.Gray{Y: uint8(p)}.RGBA()
}

// BGRAFromColor converts any color to a straight-alpha BGRA32 pixel.
func BGRAFromColor(c color.Color) BGRA32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return BGRA32{B: n.B, G: n.G, R: n.R, A: n.A}
}
