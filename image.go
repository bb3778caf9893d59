// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// WrapImage returns a writable view over the pixels of a standard library
// image without copying. *image.NRGBA maps to FormatRGBA32 and *image.Gray
// to FormatGray8; the image stride is preserved.
// Other image types return an error wrapping ErrUnsupportedConversion.
func WrapImage(img image.Image) (Span, error) {
	switch m := img.(type) {
	case *image.NRGBA:
		return wrapPix(m.Pix, m.Rect, m.Stride, FormatRGBA32)
	case *image.Gray:
		return wrapPix(m.Pix, m.Rect, m.Stride, FormatGray8)
	default:
		return Span{}, fmt.Errorf("%w: cannot wrap %T", ErrUnsupportedConversion, img)
	}
}

func wrapPix(pix []byte, r image.Rectangle, stride int, format PixelFormat) (Span, error) {
	info, err := NewInfo(r.Dx(), r.Dy(), format, WithStride(stride))
	if err != nil {
		return Span{}, err
	}
	return NewSpan(info, pix)
}

// FromImage copies a standard library image into a new owning buffer.
// *image.Gray becomes FormatGray8; every other image becomes FormatRGBA32
// with straight alpha.
func FromImage(img image.Image) (*Memory, error) {
	if s, err := WrapImage(img); err == nil {
		return s.Clone()
	}

	b := img.Bounds()
	m, err := NewMemoryOf(b.Dx(), b.Dy(), FormatRGBA32)
	if err != nil {
		return nil, err
	}
	for y := range b.Dy() {
		row := m.info.Scanline(m.data, y)
		for x := range b.Dx() {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return m, nil
}

// ToImage copies a view into a standard library image: *image.Gray for
// FormatGray8, *image.Gray16 for FormatGray16 and *image.NRGBA otherwise.
//
// Formats without a direct converter to RGBA32 are converted through
// BGRA32. Returns a *ConversionError if neither path exists.
func ToImage(src ReadOnlySpan) (image.Image, error) {
	rect := image.Rect(0, 0, src.Width(), src.Height())

	switch src.Format() {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range src.Height() {
			copy(gray.Pix[y*gray.Stride:], src.Scanline(y))
		}
		return gray, nil

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range src.Height() {
			row := src.Scanline(y)
			dst := gray16.Pix[y*gray16.Stride:]
			for x := range src.Width() {
				// image.Gray16 is big-endian
				dst[x*2] = row[x*2+1]
				dst[x*2+1] = row[x*2]
			}
		}
		return gray16, nil
	}

	nrgba := image.NewNRGBA(rect)
	dst, err := WrapImage(nrgba)
	if err != nil {
		return nil, err
	}
	if err := ConvertVia(dst, src, FormatBGRA32); err != nil {
		return nil, err
	}
	return nrgba, nil
}

// ConvertVia copies src into dst at (0, 0). If the formats have no direct
// converter it converts through an intermediate buffer in format via.
func ConvertVia(dst Span, src ReadOnlySpan, via PixelFormat) error {
	err := dst.SetPixels(0, 0, src)
	if err == nil || !errors.Is(err, ErrUnsupportedConversion) {
		return err
	}

	info, infoErr := src.Info().WithFormat(via)
	if infoErr != nil {
		return infoErr
	}
	tmp, infoErr := GetFromDefault(info)
	if infoErr != nil {
		return infoErr
	}
	defer PutToDefault(tmp)

	Logger().Debug("bitmap: converting through intermediate format",
		"src", src.Format(), "via", via, "dst", dst.Format())
	if err := tmp.Span().SetPixels(0, 0, src); err != nil {
		return err
	}
	return dst.SetPixels(0, 0, tmp.ReadOnly())
}
