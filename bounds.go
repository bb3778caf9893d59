// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"fmt"
	"image"
	"math"
)

// Bounds is an integer rectangle in pixel coordinates.
//
// Width and Height are never negative when built with NewBounds or
// produced by Clip. Bounds is a value type; operations return new values.
type Bounds struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// NewBounds creates bounds, clamping negative width and height to zero.
func NewBounds(x, y, width, height int) Bounds {
	return Bounds{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// BoundsCeiling creates bounds by rounding each component up.
func BoundsCeiling(x, y, width, height float64) Bounds {
	return NewBounds(int(math.Ceil(x)), int(math.Ceil(y)), int(math.Ceil(width)), int(math.Ceil(height)))
}

// BoundsTruncate creates bounds by truncating each component toward zero.
func BoundsTruncate(x, y, width, height float64) Bounds {
	return NewBounds(int(x), int(y), int(width), int(height))
}

// BoundsRound creates bounds by rounding each component to the nearest integer.
// Right and Bottom may drift by one unit from the rounded float edges.
func BoundsRound(x, y, width, height float64) Bounds {
	return NewBounds(int(math.Round(x)), int(math.Round(y)), int(math.Round(width)), int(math.Round(height)))
}

// BoundsFromRectangle converts an image.Rectangle to Bounds.
func BoundsFromRectangle(r image.Rectangle) Bounds {
	r = r.Canon()
	return NewBounds(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// Rectangle converts the bounds to an image.Rectangle.
func (b Bounds) Rectangle() image.Rectangle {
	return image.Rect(b.X, b.Y, b.Right(), b.Bottom())
}

// Left returns X.
func (b Bounds) Left() int { return b.X }

// Top returns Y.
func (b Bounds) Top() int { return b.Y }

// Right returns X + Width.
func (b Bounds) Right() int { return b.X + b.Width }

// Bottom returns Y + Height.
func (b Bounds) Bottom() int { return b.Y + b.Height }

// Size returns Width and Height.
func (b Bounds) Size() (width, height int) { return b.Width, b.Height }

// Area returns Width * Height.
func (b Bounds) Area() int { return b.Width * b.Height }

// IsEmpty reports whether the bounds have no area.
func (b Bounds) IsEmpty() bool { return b.Width <= 0 || b.Height <= 0 }

// Translate returns the bounds moved by (dx, dy).
func (b Bounds) Translate(dx, dy int) Bounds {
	return Bounds{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// Contains reports whether other lies fully inside b. Edges are inclusive,
// so b.Contains(b) is true. Bounds with a negative size contain nothing and
// are contained in nothing.
//
// Right and Bottom are never formed, so coordinates near the int limits
// cannot wrap into a false positive.
func (b Bounds) Contains(other Bounds) bool {
	return spanContains(b.X, b.Width, other.X, other.Width) &&
		spanContains(b.Y, b.Height, other.Y, other.Height)
}

// spanContains reports whether [x1, x1+w1) lies inside [x0, x0+w0).
func spanContains(x0, w0, x1, w1 int) bool {
	if x1 < x0 || w0 < 0 || w1 < 0 || w1 > w0 {
		return false
	}
	// x1 >= x0, so the unsigned difference is exact.
	return uint(x1)-uint(x0) <= uint(w0-w1)
}

// Clipped returns the part of b that lies inside clip.
func (b Bounds) Clipped(clip Bounds) Bounds {
	return Clip(b, clip)
}

// Clip intersects r with clip by shrinking r from each side that lies
// outside clip. The result is always contained in clip; when the two do not
// overlap the result is empty and pinned to the nearest clip edge.
func Clip(r, clip Bounds) Bounds {
	x0, x1 := clipSpan(r.Left(), r.Right(), clip.Left(), clip.Right())
	y0, y1 := clipSpan(r.Top(), r.Bottom(), clip.Top(), clip.Bottom())
	return Bounds{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// clipSpan clips the half-open interval [a0, a1) to [c0, c1).
func clipSpan(a0, a1, c0, c1 int) (lo, hi int) {
	if c1 < c0 {
		c1 = c0
	}
	lo = min(max(a0, c0), c1)
	hi = min(max(a1, lo), c1)
	return lo, hi
}

// String returns a string representation of the bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.Width, b.Height)
}
