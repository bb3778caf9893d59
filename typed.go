// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"fmt"
	"unsafe"
)

// Typed is a read-write view whose scanlines are exposed as []P.
// It reinterprets the bytes of a Span without copying.
type Typed[P Pixel] struct {
	view
}

// TypedReadOnly is the read-only counterpart of Typed.
type TypedReadOnly[P Pixel] struct {
	view
}

// OfType casts s to a typed view.
//
// Returns ErrPixelSizeMismatch if the byte count of s's format differs from
// the size of P, and ErrMisaligned if the buffer or stride would place a P
// at an address not aligned for P. The check runs once here, not per access.
func OfType[P Pixel](s Span) (Typed[P], error) {
	if err := checkTyped[P](s.view); err != nil {
		return Typed[P]{}, err
	}
	return Typed[P]{s.view}, nil
}

// OfTypeReadOnly casts s to a read-only typed view.
// See OfType for the errors returned.
func OfTypeReadOnly[P Pixel](s ReadOnlySpan) (TypedReadOnly[P], error) {
	if err := checkTyped[P](s.view); err != nil {
		return TypedReadOnly[P]{}, err
	}
	return TypedReadOnly[P]{s.view}, nil
}

func checkTyped[P Pixel](v view) error {
	var p P
	size := int(unsafe.Sizeof(p))
	if v.info.pixelSize != size {
		return fmt.Errorf("%w: %T is %d bytes, %v is %d", ErrPixelSizeMismatch, p, size, v.info.format, v.info.pixelSize)
	}
	align := uintptr(unsafe.Alignof(p))
	if align > 1 {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
		if base%align != 0 || uintptr(v.info.stride)%align != 0 {
			return fmt.Errorf("%w: %T needs %d-byte alignment", ErrMisaligned, p, align)
		}
	}
	return nil
}

func typedRow[P Pixel](v view, y int) []P {
	row := v.Scanline(y)
	if len(row) == 0 {
		return nil
	}
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(row))), v.info.width)
}

// Row returns scanline y as pixels. Returns nil if y is out of bounds.
func (t Typed[P]) Row(y int) []P { return typedRow[P](t.view, y) }

// At returns the pixel at (x, y), or the zero pixel if out of bounds.
func (t Typed[P]) At(x, y int) P { return typedAt[P](t.view, x, y) }

// Set writes the pixel at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the view.
func (t Typed[P]) Set(x, y int, p P) error {
	if x < 0 || x >= t.info.width {
		return ErrOutOfBounds
	}
	row := t.Row(y)
	if row == nil {
		return ErrOutOfBounds
	}
	row[x] = p
	return nil
}

// Fill sets every pixel to p.
func (t Typed[P]) Fill(p P) {
	for y := range t.info.height {
		row := t.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// Slice returns a typed view of region b sharing the same buffer.
func (t Typed[P]) Slice(b Bounds) (Typed[P], error) {
	v, err := t.slice(b)
	if err != nil {
		return Typed[P]{}, err
	}
	return Typed[P]{v}, nil
}

// Untyped returns the underlying byte view.
func (t Typed[P]) Untyped() Span { return Span(t) }

// ReadOnly returns a read-only typed view of the same bytes.
func (t Typed[P]) ReadOnly() TypedReadOnly[P] { return TypedReadOnly[P](t) }

// Row returns scanline y as pixels. Returns nil if y is out of bounds.
// The returned pixels must not be modified.
func (t TypedReadOnly[P]) Row(y int) []P { return typedRow[P](t.view, y) }

// At returns the pixel at (x, y), or the zero pixel if out of bounds.
func (t TypedReadOnly[P]) At(x, y int) P { return typedAt[P](t.view, x, y) }

// Slice returns a read-only typed view of region b.
func (t TypedReadOnly[P]) Slice(b Bounds) (TypedReadOnly[P], error) {
	v, err := t.slice(b)
	if err != nil {
		return TypedReadOnly[P]{}, err
	}
	return TypedReadOnly[P]{v}, nil
}

// Untyped returns the underlying read-only byte view.
func (t TypedReadOnly[P]) Untyped() ReadOnlySpan { return ReadOnlySpan(t) }

func typedAt[P Pixel](v view, x, y int) P {
	var zero P
	if x < 0 || x >= v.info.width {
		return zero
	}
	row := typedRow[P](v, y)
	if row == nil {
		return zero
	}
	return row[x]
}
