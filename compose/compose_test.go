// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"testing"

	"github.com/gogpu/bitmap"
)

func px(r, g, b, a uint8) bitmap.BGRA32 {
	return bitmap.BGRA32{B: b, G: g, R: r, A: a}
}

func near(a, b bitmap.BGRA32, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -tol && diff <= tol
	}
	return d(a.B, b.B) && d(a.G, b.G) && d(a.R, b.R) && d(a.A, b.A)
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		dst, src bitmap.BGRA32
		want     bitmap.BGRA32
	}{
		{"transparent source", px(10, 20, 30, 255), px(200, 200, 200, 0), px(10, 20, 30, 255)},
		{"opaque source", px(10, 20, 30, 255), px(200, 100, 50, 255), px(200, 100, 50, 255)},
		{"transparent destination", px(0, 0, 0, 0), px(200, 100, 50, 128), px(200, 100, 50, 128)},
		{"half over opaque", px(0, 0, 0, 255), px(255, 255, 255, 128), px(128, 128, 128, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SourceOver(tt.dst, tt.src)
			if !near(got, tt.want, 1) {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestSeparableModes(t *testing.T) {
	dst := px(200, 100, 50, 255)
	src := px(128, 255, 0, 255)

	tests := []struct {
		mode Mode
		want bitmap.BGRA32
	}{
		{ModeNormal, src},
		{ModeMultiply, px(100, 100, 0, 255)},
		{ModeScreen, px(228, 255, 50, 255)},
		// dst R is bright: screen; dst G and B are dark: multiply.
		{ModeOverlay, px(201, 200, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := tt.mode.Func()(dst, src)
			if !near(got, tt.want, 1) {
				t.Errorf("%v = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableTransparentSource(t *testing.T) {
	dst := px(1, 2, 3, 4)
	for _, fn := range []Func{Multiply, Screen, Overlay} {
		if got := fn(dst, px(255, 255, 255, 0)); got != dst {
			t.Errorf("transparent source changed dst: %v", got)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"normal", "Multiply", "SCREEN", "overlay"} {
		m, err := ParseMode(name)
		if err != nil {
			t.Errorf("ParseMode(%q) = %v", name, err)
			continue
		}
		if got, _ := ParseMode(m.String()); got != m {
			t.Errorf("ParseMode(%q).String() does not round-trip", name)
		}
	}
	if _, err := ParseMode("dissolve"); err == nil {
		t.Error("ParseMode(dissolve) should fail")
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
}

func TestMix(t *testing.T) {
	dst := px(0, 100, 200, 0)
	src := px(255, 100, 0, 255)

	if got := Mix(0)(dst, src); got != dst {
		t.Errorf("Mix(0) = %v, want dst", got)
	}
	if got := Mix(1)(dst, src); got != src {
		t.Errorf("Mix(1) = %v, want src", got)
	}
	if got := Mix(0.5)(dst, src); got != px(128, 100, 100, 128) {
		t.Errorf("Mix(0.5) = %v", got)
	}
	// Out-of-range t is clamped.
	if got := Mix(7)(dst, src); got != src {
		t.Errorf("Mix(7) = %v, want src", got)
	}
}

func TestMixLabEndpoints(t *testing.T) {
	dst := px(255, 0, 0, 255)
	src := px(0, 0, 255, 0)

	if got := MixLab(0)(dst, src); !near(got, dst, 1) {
		t.Errorf("MixLab(0) = %v, want %v", got, dst)
	}
	if got := MixLab(1)(dst, src); !near(got, src, 1) {
		t.Errorf("MixLab(1) = %v, want %v", got, src)
	}
	mid := MixLab(0.5)(dst, src)
	if mid.A != 128 {
		t.Errorf("MixLab(0.5).A = %d, want 128", mid.A)
	}
	if mid.R == 0 || mid.B == 0 {
		t.Errorf("MixLab(0.5) = %v, want a red-blue blend", mid)
	}
}

func TestApplyPixelsWithMode(t *testing.T) {
	canvas, err := bitmap.NewMemoryOf(4, 4, bitmap.FormatBGRA32)
	if err != nil {
		t.Fatal(err)
	}
	sprite, err := bitmap.NewMemoryOf(2, 2, bitmap.FormatBGRA32)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := bitmap.OfType[bitmap.BGRA32](canvas.Span())
	if err != nil {
		t.Fatal(err)
	}
	dst.Fill(px(100, 100, 100, 255))
	src, err := bitmap.OfType[bitmap.BGRA32](sprite.Span())
	if err != nil {
		t.Fatal(err)
	}
	src.Fill(px(255, 255, 255, 255))

	bitmap.ApplyPixels(dst, 3, 3, src.ReadOnly(), ModeMultiply.Func())

	if got := dst.At(3, 3); got != px(100, 100, 100, 255) {
		t.Errorf("multiply by white changed pixel: %v", got)
	}
	bitmap.ApplyPixels(dst, 3, 3, src.ReadOnly(), SourceOver)
	if got := dst.At(3, 3); got != px(255, 255, 255, 255) {
		t.Errorf("At(3, 3) = %v, want white", got)
	}
	if got := dst.At(2, 2); got != px(100, 100, 100, 255) {
		t.Errorf("At(2, 2) = %v, want untouched", got)
	}
}
