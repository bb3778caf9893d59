// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compose provides pixel combine functions for bitmap.ApplyPixels.
//
// All functions work on straight-alpha BGRA32 pixels:
//
//	dst, _ := bitmap.OfType[bitmap.BGRA32](canvas.Span())
//	src, _ := bitmap.OfTypeReadOnly[bitmap.BGRA32](sprite.ReadOnly())
//	bitmap.ApplyPixels(dst, 10, 10, src, compose.SourceOver)
package compose

import (
	"fmt"
	"strings"

	"github.com/gogpu/bitmap"
)

// Func combines a destination pixel with a source pixel.
type Func = func(dst, src bitmap.BGRA32) bitmap.BGRA32

// Mode selects a separable blend mode.
type Mode uint8

const (
	// ModeNormal performs standard alpha blending (source over destination).
	ModeNormal Mode = iota

	// ModeMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src
	ModeMultiply

	// ModeScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	ModeScreen

	// ModeOverlay combines multiply and screen based on destination brightness.
	ModeOverlay
)

var modeNames = [...]string{"normal", "multiply", "screen", "overlay"}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode returns the mode with the given name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("compose: unknown blend mode %q", name)
}

// Func returns the combine function for the mode.
func (m Mode) Func() Func {
	switch m {
	case ModeMultiply:
		return Multiply
	case ModeScreen:
		return Screen
	case ModeOverlay:
		return Overlay
	default:
		return SourceOver
	}
}

// SourceOver composites src over dst (Porter-Duff "source over").
func SourceOver(dst, src bitmap.BGRA32) bitmap.BGRA32 {
	switch {
	case src.A == 0:
		return dst
	case src.A == 0xff:
		return src
	case dst.A == 0:
		return src
	}

	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)

	ch := func(s, d uint8) uint8 {
		return uint8((float64(s)*sa + float64(d)*da*(1-sa)) / oa)
	}
	return bitmap.BGRA32{
		B: ch(src.B, dst.B),
		G: ch(src.G, dst.G),
		R: ch(src.R, dst.R),
		A: uint8(oa*255 + 0.5),
	}
}

// Multiply blends with dst * src, then composites with source alpha.
func Multiply(dst, src bitmap.BGRA32) bitmap.BGRA32 {
	return separable(dst, src, func(s, d uint8) uint8 {
		return uint8(int(s) * int(d) / 255)
	})
}

// Screen blends with 1 - (1-dst)*(1-src), then composites with source alpha.
func Screen(dst, src bitmap.BGRA32) bitmap.BGRA32 {
	return separable(dst, src, func(s, d uint8) uint8 {
		return uint8(255 - (255-int(s))*(255-int(d))/255)
	})
}

// Overlay multiplies dark destination channels and screens bright ones,
// then composites with source alpha.
func Overlay(dst, src bitmap.BGRA32) bitmap.BGRA32 {
	return separable(dst, src, func(s, d uint8) uint8 {
		if d < 128 {
			return uint8(2 * int(s) * int(d) / 255)
		}
		return uint8(255 - 2*(255-int(s))*(255-int(d))/255)
	})
}

func separable(dst, src bitmap.BGRA32, ch func(s, d uint8) uint8) bitmap.BGRA32 {
	if src.A == 0 {
		return dst
	}
	blended := bitmap.BGRA32{
		B: ch(src.B, dst.B),
		G: ch(src.G, dst.G),
		R: ch(src.R, dst.R),
		A: src.A,
	}
	return SourceOver(dst, blended)
}

// Mix returns a function that linearly interpolates from dst toward src by
// t in [0, 1], channel by channel including alpha.
func Mix(t float64) Func {
	t = clamp01(t)
	return func(dst, src bitmap.BGRA32) bitmap.BGRA32 {
		return bitmap.BGRA32{
			B: lerp8(dst.B, src.B, t),
			G: lerp8(dst.G, src.G, t),
			R: lerp8(dst.R, src.R, t),
			A: lerp8(dst.A, src.A, t),
		}
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}
