// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var canonicalRGBFormats = []PixelFormat{
	FormatRGB24, FormatBGR24, FormatRGBA32, FormatBGRA32, FormatARGB32,
}

// testPixels are opaque so that formats without alpha round-trip exactly.
var testPixels = []BGRA32{
	{B: 0, G: 0, R: 0, A: 0xff},
	{B: 0xff, G: 0xff, R: 0xff, A: 0xff},
	{B: 0x10, G: 0x80, R: 0xf0, A: 0xff},
	{B: 0x01, G: 0x02, R: 0x03, A: 0xff},
}

func encodeTest(t *testing.T, f PixelFormat, px []BGRA32) []byte {
	t.Helper()
	buf := make([]byte, len(px)*f.ByteCount())
	if err := EncodeRow(buf, f, px); err != nil {
		t.Fatalf("EncodeRow(%v) = %v", f, err)
	}
	return buf
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, src := range canonicalRGBFormats {
		for _, dst := range canonicalRGBFormats {
			t.Run(src.String()+"->"+dst.String(), func(t *testing.T) {
				in := encodeTest(t, src, testPixels)
				mid := make([]byte, len(testPixels)*dst.ByteCount())
				if err := ConvertRow(mid, dst, in, src); err != nil {
					t.Fatal(err)
				}
				back := make([]byte, len(in))
				if err := ConvertRow(back, src, mid, dst); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(in, back); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}

				got := make([]BGRA32, len(testPixels))
				if err := DecodeRow(got, mid, dst); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(testPixels, got); diff != "" {
					t.Errorf("decoded pixels mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestChannelOrder(t *testing.T) {
	px := []BGRA32{{B: 3, G: 2, R: 1, A: 4}}
	tests := []struct {
		f    PixelFormat
		want []byte
	}{
		{FormatRGBA32, []byte{1, 2, 3, 4}},
		{FormatBGRA32, []byte{3, 2, 1, 4}},
		{FormatARGB32, []byte{4, 1, 2, 3}},
		{FormatRGB24, []byte{1, 2, 3}},
		{FormatBGR24, []byte{3, 2, 1}},
		{FormatAlpha8, []byte{4}},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, encodeTest(t, tt.f, px)); diff != "" {
				t.Errorf("encoded bytes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGray8Luma(t *testing.T) {
	src := []byte{0xff, 0, 0, 0, 0xff, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}
	dst := make([]byte, 4)
	if err := ConvertRow(dst, FormatGray8, src, FormatRGB24); err != nil {
		t.Fatal(err)
	}
	want := []byte{76, 149, 29, 255}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("luma (-want +got):\n%s", diff)
	}

	rgb := make([]byte, 3)
	if err := ConvertRow(rgb, FormatRGB24, []byte{0x42}, FormatGray8); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x42, 0x42, 0x42}, rgb); diff != "" {
		t.Errorf("gray expansion (-want +got):\n%s", diff)
	}
}

func TestPairwiseConverters(t *testing.T) {
	t.Run("BGR565", func(t *testing.T) {
		src := []byte{0xf0, 0x80, 0x10, 0xff} // BGRA32: R=0x10 G=0x80 B=0xf0
		packed := make([]byte, 2)
		if err := ConvertRow(packed, FormatBGR565, src, FormatBGRA32); err != nil {
			t.Fatal(err)
		}
		back := make([]byte, 3)
		if err := ConvertRow(back, FormatRGB24, packed, FormatBGR565); err != nil {
			t.Fatal(err)
		}
		// Top bits survive, low bits are replicated.
		want := []byte{0x10, 0x82, 0xf7}
		if diff := cmp.Diff(want, back); diff != "" {
			t.Errorf("BGR565 (-want +got):\n%s", diff)
		}
	})

	t.Run("BGRA5551 alpha", func(t *testing.T) {
		src := []byte{0, 0, 0, 0x7f, 0, 0, 0, 0x80}
		packed := make([]byte, 4)
		if err := ConvertRow(packed, FormatBGRA5551, src, FormatBGRA32); err != nil {
			t.Fatal(err)
		}
		back := make([]byte, 8)
		if err := ConvertRow(back, FormatBGRA32, packed, FormatBGRA5551); err != nil {
			t.Fatal(err)
		}
		if back[3] != 0 || back[7] != 0xff {
			t.Errorf("alpha = %d, %d, want 0, 255", back[3], back[7])
		}
	})

	t.Run("BGRA4444", func(t *testing.T) {
		src := []byte{0x11, 0x22, 0x33, 0xff}
		packed := make([]byte, 2)
		if err := ConvertRow(packed, FormatBGRA4444, src, FormatBGRA32); err != nil {
			t.Fatal(err)
		}
		back := make([]byte, 4)
		if err := ConvertRow(back, FormatBGRA32, packed, FormatBGRA4444); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(src, back); diff != "" {
			t.Errorf("BGRA4444 (-want +got):\n%s", diff)
		}
	})

	t.Run("RGBA128F", func(t *testing.T) {
		src := make([]byte, 16)
		for i, v := range []float32{1, 0.5, 0, 2} {
			binary.LittleEndian.PutUint32(src[i*4:], math.Float32bits(v))
		}
		dst := make([]byte, 4)
		if err := ConvertRow(dst, FormatRGBA32, src, FormatRGBA128F); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte{255, 128, 0, 255}, dst); diff != "" {
			t.Errorf("float to bytes (-want +got):\n%s", diff)
		}
	})

	t.Run("Gray16", func(t *testing.T) {
		g16 := NewGray16(0xabcd)
		dst := make([]byte, 1)
		if err := ConvertRow(dst, FormatGray8, g16[:], FormatGray16); err != nil {
			t.Fatal(err)
		}
		if dst[0] != 0xab {
			t.Errorf("Gray16 -> Gray8 = %#x, want 0xab", dst[0])
		}
	})
}

func TestConverterUnsupported(t *testing.T) {
	pairs := [][2]PixelFormat{
		{FormatIndex8, FormatRGB24},
		{FormatRGB24, FormatIndex8},
		{FormatRGB96F, FormatGray8},
		{FormatBGR565, FormatBGRA4444},
	}
	for _, p := range pairs {
		_, err := Converter(p[0], p[1])
		if !errors.Is(err, ErrUnsupportedConversion) {
			t.Errorf("Converter(%v, %v) error = %v, want ErrUnsupportedConversion", p[0], p[1], err)
			continue
		}
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("error %T is not *ConversionError", err)
			continue
		}
		if convErr.Src != p[0] || convErr.Dst != p[1] {
			t.Errorf("ConversionError = %v -> %v, want %v -> %v", convErr.Src, convErr.Dst, p[0], p[1])
		}
	}

	if err := DecodeRow(make([]BGRA32, 1), []byte{0, 0}, FormatBGR565); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("DecodeRow(BGR565) error = %v", err)
	}
}

func TestRegisterConverter(t *testing.T) {
	if _, err := Converter(FormatGray32F, FormatGray8); err == nil {
		t.Fatal("Gray32F -> Gray8 unexpectedly supported")
	}
	t.Cleanup(func() {
		pairwiseMu.Lock()
		delete(pairwise, converterKey{FormatGray32F, FormatGray8})
		pairwiseMu.Unlock()
	})

	err := RegisterConverter(FormatGray32F, FormatGray8, func(dst, src []byte) {
		for i := range min(len(dst), len(src)/4) {
			dst[i] = unitToByte(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	src := make([]byte, 4)
	binary.LittleEndian.PutUint32(src, math.Float32bits(1))
	dst := make([]byte, 1)
	if err := ConvertRow(dst, FormatGray8, src, FormatGray32F); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 0xff {
		t.Errorf("registered converter output = %d, want 255", dst[0])
	}

	if err := RegisterConverter(PixelFormat(0), FormatGray8, copyRow); !errors.Is(err, ErrInvalidPixelFormat) {
		t.Errorf("RegisterConverter(invalid) error = %v", err)
	}
}

func TestConvertDoesNotAllocate(t *testing.T) {
	src := make([]byte, 64*3)
	dst := make([]byte, 64*4)
	for _, pair := range [][2]PixelFormat{
		{FormatRGB24, FormatBGRA32},
		{FormatRGB24, FormatRGB24},
		{FormatBGR565, FormatRGB24},
	} {
		conv, err := Converter(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		allocs := testing.AllocsPerRun(100, func() {
			conv(dst, src)
		})
		if allocs != 0 {
			t.Errorf("%v -> %v: %v allocs per row, want 0", pair[0], pair[1], allocs)
		}
	}
}

func TestHasCanonicalCodec(t *testing.T) {
	if !HasCanonicalCodec(FormatGray8) || !HasCanonicalCodec(FormatARGB32) {
		t.Error("expected canonical codecs for Gray8 and ARGB32")
	}
	if HasCanonicalCodec(FormatBGR565) {
		t.Error("BGR565 should use pairwise converters")
	}
}

func BenchmarkConvertRGB24ToBGRA32(b *testing.B) {
	src := make([]byte, 1920*3)
	dst := make([]byte, 1920*4)
	conv, err := Converter(FormatRGB24, FormatBGRA32)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		conv(dst, src)
	}
}
