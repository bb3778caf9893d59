// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bitmap describes how raw pixel bytes are laid out in memory and
// provides zero-copy, format-aware views over them.
//
// # Overview
//
// A bitmap is a byte buffer plus an [Info]: width, height, [PixelFormat] and
// stride. Info is pure metadata; wrapping a buffer with it yields a view.
// Views slice, cast and blit without copying unless a format conversion is
// required.
//
// # Quick Start
//
//	info, err := bitmap.NewInfo(640, 480, bitmap.FormatRGB24)
//	if err != nil {
//	    return err
//	}
//	m, _ := bitmap.NewMemory(info)
//
//	// A 100x100 window sharing m's bytes
//	win, err := m.Slice(bitmap.NewBounds(10, 10, 100, 100))
//
//	// Paste a BGRA32 sprite at (-5, 20); the parts outside are clipped
//	err = win.SetPixels(-5, 20, sprite.ReadOnly())
//
// # Memory Layout
//
// Pixel (x, y) begins at byte y*Stride + x*PixelSize and occupies PixelSize
// bytes, in the channel order given by the PixelFormat. Bytes between the end
// of a scanline and the start of the next are padding and are never exposed.
// A view only needs Stride*(Height-1) + PixelSize*Width bytes: the last
// scanline ends at its last pixel.
//
// # Views
//
//   - [Span]: writable, borrowed
//   - [ReadOnlySpan]: read-only, borrowed; has no mutating methods
//   - [Memory]: owns its buffer and hands out views
//   - [Typed] and [TypedReadOnly]: scanlines as []P for a [Pixel] type
//
// Slicing shares bytes with the parent and keeps its read-only-ness. Views
// over the same region alias each other; only views over disjoint scanlines
// may be written concurrently.
//
// # Conversion
//
// Formats in the 24/32-bit RGB family, plus Gray8 and Alpha8, convert
// through a canonical BGRA32 pixel. Packed 16-bit and float formats use
// dedicated pairwise converters. Pairs with no converter fail with
// [ErrUnsupportedConversion]; callers can go through an intermediate format
// with [ConvertVia].
package bitmap
