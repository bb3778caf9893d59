// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/bitmap"
)

// MixLab returns a function that interpolates from dst toward src by t in
// CIE L*a*b* space, which keeps perceived lightness changing evenly.
// Alpha is interpolated linearly.
func MixLab(t float64) Func {
	t = clamp01(t)
	return func(dst, src bitmap.BGRA32) bitmap.BGRA32 {
		c := toColorful(dst).BlendLab(toColorful(src), t).Clamped()
		r, g, b := c.RGB255()
		return bitmap.BGRA32{B: b, G: g, R: r, A: lerp8(dst.A, src.A, t)}
	}
}

func toColorful(p bitmap.BGRA32) colorful.Color {
	return colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
}
