// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"image"
	"math"
	"testing"
)

func TestNewBoundsClampsNegativeSize(t *testing.T) {
	b := NewBounds(3, 4, -5, -1)
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("NewBounds(3, 4, -5, -1) = %v, want zero size", b)
	}
	if !b.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestBoundsEdges(t *testing.T) {
	b := NewBounds(2, 3, 10, 20)
	if b.Left() != 2 || b.Top() != 3 || b.Right() != 12 || b.Bottom() != 23 {
		t.Errorf("edges of %v = %d,%d,%d,%d", b, b.Left(), b.Top(), b.Right(), b.Bottom())
	}
	if w, h := b.Size(); w != 10 || h != 20 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	if b.Area() != 200 {
		t.Errorf("Area() = %d, want 200", b.Area())
	}
	if got := b.Translate(-2, 5); got != NewBounds(0, 8, 10, 20) {
		t.Errorf("Translate(-2, 5) = %v", got)
	}
}

func TestBoundsContains(t *testing.T) {
	outer := NewBounds(0, 0, 10, 10)
	tests := []struct {
		name  string
		inner Bounds
		want  bool
	}{
		{"self", outer, true},
		{"inside", NewBounds(2, 2, 5, 5), true},
		{"touches right edge", NewBounds(5, 0, 5, 10), true},
		{"crosses right edge", NewBounds(8, 8, 5, 5), false},
		{"negative origin", NewBounds(-1, 0, 2, 2), false},
		{"empty inside", NewBounds(3, 3, 0, 0), true},
		{"right edge wraps", Bounds{X: math.MaxInt, Width: 1, Height: 1}, false},
		{"bottom edge wraps", Bounds{Y: math.MaxInt - 2, Width: 1, Height: 5}, false},
		{"huge width", Bounds{X: 1, Width: math.MaxInt, Height: 1}, false},
		{"negative width", Bounds{X: 5, Y: 5, Width: -3, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestBoundsContainsNearIntLimits(t *testing.T) {
	outer := NewBounds(math.MaxInt-10, math.MinInt, 10, 10)
	if !outer.Contains(NewBounds(math.MaxInt-3, math.MinInt+2, 3, 8)) {
		t.Error("Contains() = false for a region touching the far edges")
	}
	if outer.Contains(NewBounds(math.MaxInt-3, math.MinInt, 4, 1)) {
		t.Error("Contains() = true for a region one past the right edge")
	}
}

func TestClip(t *testing.T) {
	clip := NewBounds(0, 0, 10, 10)
	tests := []struct {
		name string
		r    Bounds
		want Bounds
	}{
		{"inside", NewBounds(1, 1, 3, 3), NewBounds(1, 1, 3, 3)},
		{"overlap bottom right", NewBounds(8, 8, 5, 5), NewBounds(8, 8, 2, 2)},
		{"overlap top left", NewBounds(-2, -3, 5, 5), NewBounds(0, 0, 3, 2)},
		{"covers clip", NewBounds(-5, -5, 30, 30), clip},
		{"left of clip", NewBounds(-10, 2, 5, 5), NewBounds(0, 2, 0, 5)},
		{"below clip", NewBounds(2, 15, 5, 5), NewBounds(2, 10, 5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.r, clip)
			if got != tt.want {
				t.Errorf("Clip(%v, %v) = %v, want %v", tt.r, clip, got, tt.want)
			}
			if !clip.Contains(got) {
				t.Errorf("Clip result %v not contained in %v", got, clip)
			}
			if got != tt.r.Clipped(clip) {
				t.Errorf("Clipped() = %v, want %v", tt.r.Clipped(clip), got)
			}
		})
	}
}

func TestClipAlwaysContained(t *testing.T) {
	clips := []Bounds{NewBounds(0, 0, 4, 4), NewBounds(-3, 2, 7, 1), NewBounds(5, 5, 0, 0)}
	for _, clip := range clips {
		for x := -8; x <= 8; x += 2 {
			for y := -8; y <= 8; y += 2 {
				for _, size := range []int{0, 1, 3, 20} {
					r := NewBounds(x, y, size, size)
					if got := Clip(r, clip); !clip.Contains(got) {
						t.Fatalf("Clip(%v, %v) = %v escapes clip", r, clip, got)
					}
				}
			}
		}
	}
}

func TestBoundsFromFloat(t *testing.T) {
	tests := []struct {
		name string
		fn   func(x, y, w, h float64) Bounds
		want Bounds
	}{
		{"ceiling", BoundsCeiling, NewBounds(2, -1, 4, 3)},
		{"truncate", BoundsTruncate, NewBounds(1, -1, 3, 2)},
		{"round", BoundsRound, NewBounds(2, -2, 4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(1.5, -1.6, 3.5, 2.5); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsRectangleRoundTrip(t *testing.T) {
	r := image.Rect(3, 4, 13, 9)
	b := BoundsFromRectangle(r)
	if b != NewBounds(3, 4, 10, 5) {
		t.Errorf("BoundsFromRectangle(%v) = %v", r, b)
	}
	if b.Rectangle() != r {
		t.Errorf("Rectangle() = %v, want %v", b.Rectangle(), r)
	}

	// Non-canonical rectangles are normalized.
	if got := BoundsFromRectangle(image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(1, 2)}); got != NewBounds(1, 2, 4, 3) {
		t.Errorf("BoundsFromRectangle(swapped) = %v", got)
	}
}
