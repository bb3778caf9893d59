// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/bitmap/internal/cache"
)

// RowConverter converts a run of pixels from one format to another.
// dst and src hold the same number of pixels in their respective formats.
type RowConverter func(dst, src []byte)

// canonicalCodec converts one pixel of a format to and from the canonical
// pixel (BGRA32 layout, straight alpha).
type canonicalCodec struct {
	decode func(src []byte) BGRA32
	encode func(dst []byte, c BGRA32)
}

// canonicalCodecs holds the formats reachable through the canonical pixel.
// Formats with sub-byte or float channels are not listed here; they need
// pairwise converters.
var canonicalCodecs = map[PixelFormat]canonicalCodec{
	FormatBGRA32: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[0], G: s[1], R: s[2], A: s[3]} },
		encode: func(d []byte, c BGRA32) { d[0], d[1], d[2], d[3] = c.B, c.G, c.R, c.A },
	},
	FormatRGBA32: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[2], G: s[1], R: s[0], A: s[3]} },
		encode: func(d []byte, c BGRA32) { d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A },
	},
	FormatARGB32: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[3], G: s[2], R: s[1], A: s[0]} },
		encode: func(d []byte, c BGRA32) { d[0], d[1], d[2], d[3] = c.A, c.R, c.G, c.B },
	},
	FormatBGR24: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[0], G: s[1], R: s[2], A: 0xff} },
		encode: func(d []byte, c BGRA32) { d[0], d[1], d[2] = c.B, c.G, c.R },
	},
	FormatRGB24: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[2], G: s[1], R: s[0], A: 0xff} },
		encode: func(d []byte, c BGRA32) { d[0], d[1], d[2] = c.R, c.G, c.B },
	},
	FormatGray8: {
		decode: func(s []byte) BGRA32 { return BGRA32{B: s[0], G: s[0], R: s[0], A: 0xff} },
		encode: func(d []byte, c BGRA32) { d[0] = luma(c.R, c.G, c.B) },
	},
	FormatAlpha8: {
		decode: func(s []byte) BGRA32 { return BGRA32{A: s[0]} },
		encode: func(d []byte, c BGRA32) { d[0] = c.A },
	},
}

// luma uses the Rec. 601 weights: 0.299*R + 0.587*G + 0.114*B.
func luma(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}

type converterKey struct {
	src, dst PixelFormat
}

// pairwise holds dedicated converters. They take priority over the
// canonical path.
var (
	pairwiseMu sync.RWMutex
	pairwise   = map[converterKey]RowConverter{}
)

// composed memoizes canonical decode/encode compositions.
var composed = cache.New[converterKey, RowConverter](64)

func init() {
	registerPairwise(FormatBGR565, FormatBGRA32, 2, 4, func(d, s []byte) {
		r, g, b := BGR565{s[0], s[1]}.RGB()
		d[0], d[1], d[2], d[3] = b, g, r, 0xff
	})
	registerPairwise(FormatBGRA32, FormatBGR565, 4, 2, func(d, s []byte) {
		p := NewBGR565(s[2], s[1], s[0])
		d[0], d[1] = p[0], p[1]
	})
	registerPairwise(FormatBGR565, FormatRGB24, 2, 3, func(d, s []byte) {
		d[0], d[1], d[2] = BGR565{s[0], s[1]}.RGB()
	})
	registerPairwise(FormatRGB24, FormatBGR565, 3, 2, func(d, s []byte) {
		p := NewBGR565(s[0], s[1], s[2])
		d[0], d[1] = p[0], p[1]
	})
	registerPairwise(FormatBGRA5551, FormatBGRA32, 2, 4, func(d, s []byte) {
		r, g, b, a := BGRA5551{s[0], s[1]}.RGBA8()
		d[0], d[1], d[2], d[3] = b, g, r, a
	})
	registerPairwise(FormatBGRA32, FormatBGRA5551, 4, 2, func(d, s []byte) {
		p := NewBGRA5551(s[2], s[1], s[0], s[3])
		d[0], d[1] = p[0], p[1]
	})
	registerPairwise(FormatBGRA4444, FormatBGRA32, 2, 4, func(d, s []byte) {
		r, g, b, a := BGRA4444{s[0], s[1]}.RGBA8()
		d[0], d[1], d[2], d[3] = b, g, r, a
	})
	registerPairwise(FormatBGRA32, FormatBGRA4444, 4, 2, func(d, s []byte) {
		p := NewBGRA4444(s[2], s[1], s[0], s[3])
		d[0], d[1] = p[0], p[1]
	})
	registerPairwise(FormatRGBA128F, FormatRGBA32, 16, 4, func(d, s []byte) {
		for c := range 4 {
			d[c] = unitToByte(math.Float32frombits(binary.LittleEndian.Uint32(s[c*4:])))
		}
	})
	registerPairwise(FormatRGBA32, FormatRGBA128F, 4, 16, func(d, s []byte) {
		for c := range 4 {
			binary.LittleEndian.PutUint32(d[c*4:], math.Float32bits(float32(s[c])/255))
		}
	})
	registerPairwise(FormatGray16, FormatGray8, 2, 1, func(d, s []byte) {
		d[0] = s[1]
	})
	registerPairwise(FormatGray8, FormatGray16, 1, 2, func(d, s []byte) {
		d[0], d[1] = s[0], s[0]
	})
}

// unitToByte maps [0, 1] to [0, 255] with rounding; NaN maps to 0.
func unitToByte(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*255 + 0.5)
	}
}

// registerPairwise installs a per-pixel function as a row converter.
func registerPairwise(src, dst PixelFormat, srcSize, dstSize int, px func(d, s []byte)) {
	pairwise[converterKey{src, dst}] = func(d, s []byte) {
		n := min(len(s)/srcSize, len(d)/dstSize)
		for i := range n {
			px(d[i*dstSize:(i+1)*dstSize], s[i*srcSize:(i+1)*srcSize])
		}
	}
}

// RegisterConverter installs a dedicated converter for a format pair,
// replacing any existing one. It takes priority over the canonical path.
// Returns ErrInvalidPixelFormat if either format is invalid.
func RegisterConverter(src, dst PixelFormat, conv RowConverter) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if conv == nil {
		return fmt.Errorf("bitmap: nil converter for %v to %v", src, dst)
	}
	pairwiseMu.Lock()
	pairwise[converterKey{src, dst}] = conv
	pairwiseMu.Unlock()
	composed.Delete(converterKey{src, dst})
	return nil
}

// HasCanonicalCodec reports whether f converts through the canonical pixel.
func HasCanonicalCodec(f PixelFormat) bool {
	_, ok := canonicalCodecs[f]
	return ok
}

// Converter returns a row converter from src to dst.
//
// Equal formats yield a plain copy. A registered pairwise converter is used
// when present; otherwise both formats must have a canonical codec. Returns
// a *ConversionError (wrapping ErrUnsupportedConversion) when no path exists.
func Converter(src, dst PixelFormat) (RowConverter, error) {
	if src == dst {
		return copyRow, nil
	}

	key := converterKey{src, dst}
	pairwiseMu.RLock()
	conv, ok := pairwise[key]
	pairwiseMu.RUnlock()
	if ok {
		return conv, nil
	}

	dec, okSrc := canonicalCodecs[src]
	enc, okDst := canonicalCodecs[dst]
	if !okSrc || !okDst {
		return nil, &ConversionError{Src: src, Dst: dst}
	}

	return composed.GetOrCreate(key, func() RowConverter {
		Logger().Debug("bitmap: composing canonical converter", "src", src, "dst", dst)
		return composeCanonical(dec, enc, src.ByteCount(), dst.ByteCount())
	}), nil
}

func copyRow(dst, src []byte) { copy(dst, src) }

// composeCanonical decodes each source pixel to the canonical pixel and
// encodes it into the destination format. The canonical pixel travels by
// value, so the conversion does not allocate.
func composeCanonical(dec, enc canonicalCodec, srcSize, dstSize int) RowConverter {
	return func(d, s []byte) {
		n := min(len(s)/srcSize, len(d)/dstSize)
		for i := range n {
			enc.encode(d[i*dstSize:(i+1)*dstSize], dec.decode(s[i*srcSize:(i+1)*srcSize]))
		}
	}
}

// ConvertRow converts the pixels of src (in srcFormat) into dst (in dstFormat).
// The pixel count is taken from the shorter of the two slices.
func ConvertRow(dst []byte, dstFormat PixelFormat, src []byte, srcFormat PixelFormat) error {
	conv, err := Converter(srcFormat, dstFormat)
	if err != nil {
		return err
	}
	conv(dst, src)
	return nil
}

// DecodeRow decodes the pixels of src into canonical pixels.
// Returns a *ConversionError if f has no canonical codec.
func DecodeRow(dst []BGRA32, src []byte, f PixelFormat) error {
	codec, ok := canonicalCodecs[f]
	if !ok {
		return &ConversionError{Src: f, Dst: FormatBGRA32}
	}
	size := f.ByteCount()
	n := min(len(dst), len(src)/size)
	for i := range n {
		dst[i] = codec.decode(src[i*size : (i+1)*size])
	}
	return nil
}

// EncodeRow encodes canonical pixels into dst in format f.
// Returns a *ConversionError if f has no canonical codec.
func EncodeRow(dst []byte, f PixelFormat, src []BGRA32) error {
	codec, ok := canonicalCodecs[f]
	if !ok {
		return &ConversionError{Src: FormatBGRA32, Dst: f}
	}
	size := f.ByteCount()
	n := min(len(src), len(dst)/size)
	for i := range n {
		codec.encode(dst[i*size:(i+1)*size], src[i])
	}
	return nil
}
