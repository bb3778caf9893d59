// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// view is the state shared by Span and ReadOnlySpan: a layout plus the
// borrowed bytes it describes. data is trimmed to info.ByteSize().
type view struct {
	info Info
	data []byte
}

func newView(info Info, data []byte) (view, error) {
	if info.IsEmpty() {
		return view{}, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}
	size := info.ByteSize()
	if len(data) < size {
		return view{}, fmt.Errorf("%w: have %d bytes, %v needs %d", ErrDataTooSmall, len(data), info, size)
	}
	return view{info: info, data: data[:size:size]}, nil
}

// slice re-slices the view at the offset returned by Info.Slice.
func (v view) slice(b Bounds) (view, error) {
	offset, info, err := v.info.Slice(b)
	if err != nil {
		return view{}, err
	}
	end := offset + info.ByteSize()
	return view{info: info, data: v.data[offset:end:end]}, nil
}

// Info returns the layout of the view.
func (v view) Info() Info { return v.info }

// Width returns the width in pixels.
func (v view) Width() int { return v.info.width }

// Height returns the height in pixels.
func (v view) Height() int { return v.info.height }

// Format returns the pixel format.
func (v view) Format() PixelFormat { return v.info.format }

// Bounds returns (0, 0, Width, Height).
func (v view) Bounds() Bounds { return v.info.Bounds() }

// IsEmpty returns true for the zero view.
func (v view) IsEmpty() bool { return v.info.IsEmpty() }

// Bytes returns the underlying bytes, Info().ByteSize() long. Bytes between
// scanlines may belong to other views over the same buffer.
func (v view) Bytes() []byte { return v.data }

// Scanline returns the pixel bytes of row y, excluding padding.
// Returns nil if y is out of bounds.
func (v view) Scanline(y int) []byte { return v.info.Scanline(v.data, y) }

// Pixel returns the bytes of pixel (x, y).
// Returns nil if the coordinates are out of bounds.
func (v view) Pixel(x, y int) []byte { return v.info.Pixel(v.data, x, y) }

// Pixels returns the bytes of count contiguous pixels of row y starting at x.
func (v view) Pixels(x, y, count int) []byte { return v.info.Pixels(v.data, x, y, count) }

// Equal reports whether other has the same size, format and pixel bytes.
// Stride and padding bytes are not compared, so a padded view and a packed
// copy of it are equal.
func (v view) Equal(other ReadOnlySpan) bool {
	if v.info.width != other.info.width || v.info.height != other.info.height || v.info.format != other.info.format {
		return false
	}
	for y := range v.info.height {
		if !bytes.Equal(v.Scanline(y), other.Scanline(y)) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit FNV-1a hash of the size, format and pixel bytes.
// Views that are Equal have the same hash.
func (v view) Hash() uint64 {
	h := fnv.New64a()
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(v.info.width))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(v.info.height))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(v.info.format))
	_, _ = h.Write(hdr[:])
	for y := range v.info.height {
		_, _ = h.Write(v.Scanline(y))
	}
	return h.Sum64()
}

// Clone copies the pixels into a new owning buffer with an unpadded stride.
// Returns ErrInvalidDimensions for the zero view.
func (v view) Clone() (*Memory, error) {
	info, err := v.info.WithFormat(v.info.format)
	if err != nil {
		return nil, err
	}
	m := newMemory(info)
	for y := range v.info.height {
		copy(info.Scanline(m.data, y), v.Scanline(y))
	}
	return m, nil
}

// String returns a string representation of the view.
func (v view) String() string {
	return fmt.Sprintf("bitmap(%v)", v.info)
}

// ReadOnlySpan is a non-owning, read-only view of a bitmap.
//
// The view borrows its buffer; the caller keeps the buffer alive and must
// not mutate the bytes returned by Scanline, Pixel or Bytes through this
// view. ReadOnlySpan has no mutating methods.
type ReadOnlySpan struct {
	view
}

// NewReadOnlySpan wraps data with the given layout.
// Returns ErrDataTooSmall if len(data) < info.ByteSize().
func NewReadOnlySpan(info Info, data []byte) (ReadOnlySpan, error) {
	v, err := newView(info, data)
	if err != nil {
		return ReadOnlySpan{}, err
	}
	return ReadOnlySpan{v}, nil
}

// Slice returns a read-only view of region b sharing the same buffer.
// Returns ErrOutOfBounds if b is not inside the view.
func (s ReadOnlySpan) Slice(b Bounds) (ReadOnlySpan, error) {
	v, err := s.slice(b)
	if err != nil {
		return ReadOnlySpan{}, err
	}
	return ReadOnlySpan{v}, nil
}

// Span is a non-owning, read-write view of a bitmap.
//
// Slicing a Span yields another Span over the same bytes. Two writable
// views over overlapping regions must not be written concurrently; views
// over disjoint scanlines may be.
type Span struct {
	view
}

// NewSpan wraps data with the given layout.
// Returns ErrDataTooSmall if len(data) < info.ByteSize().
func NewSpan(info Info, data []byte) (Span, error) {
	v, err := newView(info, data)
	if err != nil {
		return Span{}, err
	}
	return Span{v}, nil
}

// ReadOnly returns a read-only view of the same bytes.
func (s Span) ReadOnly() ReadOnlySpan {
	return ReadOnlySpan(s)
}

// Slice returns a writable view of region b sharing the same buffer.
// Returns ErrOutOfBounds if b is not inside the view.
func (s Span) Slice(b Bounds) (Span, error) {
	v, err := s.slice(b)
	if err != nil {
		return Span{}, err
	}
	return Span{v}, nil
}

// Clear sets every pixel byte to zero. Padding is left untouched.
func (s Span) Clear() {
	for y := range s.info.height {
		clear(s.Scanline(y))
	}
}

// Fill sets every pixel to the given raw pixel bytes.
// Returns ErrPixelSizeMismatch if len(pixel) != PixelSize().
func (s Span) Fill(pixel []byte) error {
	if len(pixel) != s.info.pixelSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPixelSizeMismatch, len(pixel), s.info.pixelSize)
	}
	if s.IsEmpty() {
		return nil
	}
	first := s.Scanline(0)
	for x := 0; x < len(first); x += len(pixel) {
		copy(first[x:], pixel)
	}
	for y := 1; y < s.info.height; y++ {
		copy(s.Scanline(y), first)
	}
	return nil
}
