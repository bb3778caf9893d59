// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

// ClampTransfer computes the regions involved in copying a bitmap with
// bounds src into a bitmap with bounds dst at offset (x, y).
//
// The transfer is clamped twice: once against dst using the positive
// offset, once against src using the negated offset. Clamping only one
// side can select a region that is out of bounds on the other when the
// offset is negative or large. Both returned regions have the same size;
// they are empty when nothing overlaps.
func ClampTransfer(dst, src Bounds, x, y int) (dstRect, srcRect Bounds) {
	dstRect = Clip(src.Translate(x, y), dst)
	srcRect = Clip(dst.Translate(-x, -y), src)

	w := min(dstRect.Width, srcRect.Width)
	h := min(dstRect.Height, srcRect.Height)
	dstRect.Width, srcRect.Width = w, w
	dstRect.Height, srcRect.Height = h, h
	return dstRect, srcRect
}

// SetPixels copies src into s with src's top-left pixel at (x, y),
// converting pixel formats when they differ.
//
// Parts of src that fall outside s are skipped; a transfer with no overlap
// is a no-op and returns nil. Equal formats are copied row by row without
// allocating. Different formats go through Converter; a pair without a
// converter returns a *ConversionError and leaves s unchanged.
//
// src and s must not share bytes.
func (s Span) SetPixels(x, y int, src ReadOnlySpan) error {
	dr, sr := ClampTransfer(s.Bounds(), src.Bounds(), x, y)
	if dr.IsEmpty() {
		return nil
	}

	if src.Format() == s.Format() {
		for row := range dr.Height {
			copy(s.Pixels(dr.X, dr.Y+row, dr.Width), src.Pixels(sr.X, sr.Y+row, sr.Width))
		}
		return nil
	}

	conv, err := Converter(src.Format(), s.Format())
	if err != nil {
		return err
	}
	for row := range dr.Height {
		conv(s.Pixels(dr.X, dr.Y+row, dr.Width), src.Pixels(sr.X, sr.Y+row, sr.Width))
	}
	return nil
}

// ApplyPixels combines src into dst pixel by pixel with src's top-left
// pixel at (x, y): dst[p] = fn(dst[p], src[p]) over the overlapping region.
// The region is computed as in SetPixels; no overlap means no calls.
func ApplyPixels[D, S Pixel](dst Typed[D], x, y int, src TypedReadOnly[S], fn func(dst D, src S) D) {
	dr, sr := ClampTransfer(dst.Bounds(), src.Bounds(), x, y)
	if dr.IsEmpty() {
		return
	}
	for row := range dr.Height {
		d := dst.Row(dr.Y + row)[dr.X:dr.Right()]
		s := src.Row(sr.Y + row)[sr.X:sr.Right()]
		for i := range d {
			d[i] = fn(d[i], s[i])
		}
	}
}

// ApplyPixelsSpan is the untyped form of ApplyPixels. fn receives the raw
// bytes of one destination pixel and one source pixel.
func ApplyPixelsSpan(dst Span, x, y int, src ReadOnlySpan, fn func(dst, src []byte)) {
	dr, sr := ClampTransfer(dst.Bounds(), src.Bounds(), x, y)
	if dr.IsEmpty() {
		return
	}
	dps, sps := dst.info.pixelSize, src.info.pixelSize
	for row := range dr.Height {
		d := dst.Pixels(dr.X, dr.Y+row, dr.Width)
		s := src.Pixels(sr.X, sr.Y+row, sr.Width)
		for i := range dr.Width {
			fn(d[i*dps:(i+1)*dps:(i+1)*dps], s[i*sps:(i+1)*sps:(i+1)*sps])
		}
	}
}
