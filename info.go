// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"fmt"
	"math"
)

// Info describes how pixels are laid out in a byte buffer: dimensions,
// pixel format and stride (scanline size). It holds no buffer and can be
// reused across any number of buffers.
//
// Pixel (x, y) starts at byte y*Stride() + x*PixelSize() and occupies
// PixelSize() bytes. Bytes between the end of a row and the start of the
// next are padding and are never exposed as pixel data.
//
// Info is an immutable value; == compares two layouts structurally.
type Info struct {
	width     int
	height    int
	format    PixelFormat
	pixelSize int
	stride    int
}

// NewInfo creates a layout for a width x height bitmap in the given format.
// Without options the stride is width * pixel size (no padding).
//
// Returns ErrInvalidPixelFormat, ErrInvalidDimensions or ErrInvalidStride
// when the arguments do not describe a valid layout, including layouts whose
// byte size does not fit in an int.
func NewInfo(width, height int, format PixelFormat, opts ...InfoOption) (Info, error) {
	if err := format.Validate(); err != nil {
		return Info{}, err
	}
	if width <= 0 || height <= 0 {
		return Info{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	var o infoOptions
	for _, opt := range opts {
		opt(&o)
	}

	pixelSize := format.ByteCount()
	if width > math.MaxInt/pixelSize {
		return Info{}, fmt.Errorf("%w: %d pixels of %d bytes overflow a scanline", ErrInvalidDimensions, width, pixelSize)
	}
	minStride := width * pixelSize
	stride := minStride
	switch {
	case o.strideSet:
		if o.stride < minStride {
			return Info{}, fmt.Errorf("%w: %d < %d", ErrInvalidStride, o.stride, minStride)
		}
		stride = o.stride
	case o.align > 1:
		if minStride > math.MaxInt-(o.align-1) {
			return Info{}, fmt.Errorf("%w: %d aligned to %d overflows", ErrInvalidStride, minStride, o.align)
		}
		stride = (minStride + o.align - 1) / o.align * o.align
	}

	// PaddedByteSize bounds every offset and length derived from the layout.
	if height > math.MaxInt/stride {
		return Info{}, fmt.Errorf("%w: %d rows of %d bytes overflow", ErrInvalidDimensions, height, stride)
	}

	return Info{
		width:     width,
		height:    height,
		format:    format,
		pixelSize: pixelSize,
		stride:    stride,
	}, nil
}

// MustInfo is like NewInfo but panics on error.
func MustInfo(width, height int, format PixelFormat, opts ...InfoOption) Info {
	info, err := NewInfo(width, height, format, opts...)
	if err != nil {
		panic(err)
	}
	return info
}

// Width returns the width in pixels.
func (i Info) Width() int { return i.width }

// Height returns the height in pixels.
func (i Info) Height() int { return i.height }

// Format returns the pixel format.
func (i Info) Format() PixelFormat { return i.format }

// PixelSize returns the number of bytes per pixel.
func (i Info) PixelSize() int { return i.pixelSize }

// Stride returns the number of bytes from the start of one scanline to the
// start of the next (including padding).
func (i Info) Stride() int { return i.stride }

// RowSize returns the number of pixel bytes in one scanline, excluding padding.
func (i Info) RowSize() int { return i.width * i.pixelSize }

// Bounds returns (0, 0, Width, Height).
func (i Info) Bounds() Bounds { return Bounds{Width: i.width, Height: i.height} }

// IsEmpty returns true for the zero Info.
func (i Info) IsEmpty() bool { return i.width == 0 || i.height == 0 }

// IsContinuous returns true if scanlines are packed without padding.
func (i Info) IsContinuous() bool { return i.stride == i.RowSize() }

// ByteSize returns the minimum buffer length that can hold the bitmap:
// Stride*(Height-1) + PixelSize*Width.
//
// The last scanline only counts up to its last pixel, so a sliced layout
// never claims padding bytes that belong to a sibling region.
func (i Info) ByteSize() int {
	if i.IsEmpty() {
		return 0
	}
	return i.stride*(i.height-1) + i.pixelSize*i.width
}

// PaddedByteSize returns Stride*Height, the size of a buffer in which every
// scanline, including the last, is fully strided. Owning buffers and pools
// allocate this size.
func (i Info) PaddedByteSize() int {
	return i.stride * i.height
}

// Slice returns the layout of the region b together with the byte offset
// of its first pixel in a buffer laid out as i. No bytes are copied.
//
// The offset is Stride*b.Y + PixelSize*b.X. The sliced layout keeps the
// original stride and format.
//
// Returns ErrOutOfBounds if b is not contained in i.Bounds() and
// ErrInvalidDimensions if b is empty.
func (i Info) Slice(b Bounds) (int, Info, error) {
	if !i.Bounds().Contains(b) {
		return 0, Info{}, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, b, i.Bounds())
	}
	if b.IsEmpty() {
		return 0, Info{}, fmt.Errorf("%w: empty region %v", ErrInvalidDimensions, b)
	}

	offset := i.stride*b.Y + i.pixelSize*b.X
	sliced := Info{
		width:     b.Width,
		height:    b.Height,
		format:    i.format,
		pixelSize: i.pixelSize,
		stride:    i.stride,
	}
	return offset, sliced, nil
}

// WithFormat returns a layout of the same size in another format, with the
// default (unpadded) stride.
func (i Info) WithFormat(format PixelFormat) (Info, error) {
	return NewInfo(i.width, i.height, format)
}

// WithSize returns a layout of another size in the same format, with the
// default (unpadded) stride.
func (i Info) WithSize(width, height int) (Info, error) {
	return NewInfo(width, height, i.format)
}

// Scanline returns the pixel bytes of row y within buf, excluding padding.
// The returned slice has length and capacity RowSize().
// Returns nil if y is out of bounds.
func (i Info) Scanline(buf []byte, y int) []byte {
	if y < 0 || y >= i.height {
		return nil
	}
	start := y * i.stride
	end := start + i.RowSize()
	return buf[start:end:end]
}

// Pixel returns the bytes of pixel (x, y) within buf.
// Returns nil if the coordinates are out of bounds.
func (i Info) Pixel(buf []byte, x, y int) []byte {
	return i.Pixels(buf, x, y, 1)
}

// Pixels returns the bytes of count contiguous pixels of row y starting at x.
// The run never wraps to the next scanline; returns nil if it would.
func (i Info) Pixels(buf []byte, x, y, count int) []byte {
	if x < 0 || y < 0 || y >= i.height || count < 0 || x > i.width || count > i.width-x {
		return nil
	}
	start := y*i.stride + x*i.pixelSize
	end := start + count*i.pixelSize
	return buf[start:end:end]
}

// String returns a string representation of the layout.
func (i Info) String() string {
	return fmt.Sprintf("%dx%d %v stride=%d", i.width, i.height, i.format, i.stride)
}
