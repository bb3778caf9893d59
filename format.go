// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"fmt"
	"strings"
)

// Element identifies one channel slot of a pixel format: its role
// (red, green, blue, alpha, gray, index, undefined) and its bit width.
type Element uint8

// Known elements. The zero value is ElementEmpty, which terminates formats
// that use fewer than four elements.
const (
	ElementEmpty Element = iota

	ElementUndefined1
	ElementUndefined4
	ElementUndefined8
	ElementUndefined16
	ElementUndefined32

	ElementIndex1
	ElementIndex4
	ElementIndex8
	ElementIndex16

	ElementAlpha1
	ElementAlpha4
	ElementAlpha8
	ElementAlpha16
	ElementAlpha32F

	ElementRed4
	ElementRed5
	ElementRed8
	ElementRed16
	ElementRed32F

	ElementGreen4
	ElementGreen5
	ElementGreen6
	ElementGreen8
	ElementGreen16
	ElementGreen32F

	ElementBlue4
	ElementBlue5
	ElementBlue8
	ElementBlue16
	ElementBlue32F

	ElementGray4
	ElementGray8
	ElementGray16
	ElementGray32F

	// elementCount is the number of elements (for internal use).
	elementCount
)

type elementRole uint8

const (
	roleEmpty elementRole = iota
	roleUndefined
	roleIndex
	roleAlpha
	roleRed
	roleGreen
	roleBlue
	roleGray
)

type elementInfo struct {
	name  string
	role  elementRole
	bits  uint8
	float bool
}

// elementTable maps each element to its role and width.
var elementTable = [elementCount]elementInfo{
	ElementEmpty: {"Empty", roleEmpty, 0, false},

	ElementUndefined1:  {"Undefined1", roleUndefined, 1, false},
	ElementUndefined4:  {"Undefined4", roleUndefined, 4, false},
	ElementUndefined8:  {"Undefined8", roleUndefined, 8, false},
	ElementUndefined16: {"Undefined16", roleUndefined, 16, false},
	ElementUndefined32: {"Undefined32", roleUndefined, 32, false},

	ElementIndex1:  {"Index1", roleIndex, 1, false},
	ElementIndex4:  {"Index4", roleIndex, 4, false},
	ElementIndex8:  {"Index8", roleIndex, 8, false},
	ElementIndex16: {"Index16", roleIndex, 16, false},

	ElementAlpha1:   {"Alpha1", roleAlpha, 1, false},
	ElementAlpha4:   {"Alpha4", roleAlpha, 4, false},
	ElementAlpha8:   {"Alpha8", roleAlpha, 8, false},
	ElementAlpha16:  {"Alpha16", roleAlpha, 16, false},
	ElementAlpha32F: {"Alpha32F", roleAlpha, 32, true},

	ElementRed4:   {"Red4", roleRed, 4, false},
	ElementRed5:   {"Red5", roleRed, 5, false},
	ElementRed8:   {"Red8", roleRed, 8, false},
	ElementRed16:  {"Red16", roleRed, 16, false},
	ElementRed32F: {"Red32F", roleRed, 32, true},

	ElementGreen4:   {"Green4", roleGreen, 4, false},
	ElementGreen5:   {"Green5", roleGreen, 5, false},
	ElementGreen6:   {"Green6", roleGreen, 6, false},
	ElementGreen8:   {"Green8", roleGreen, 8, false},
	ElementGreen16:  {"Green16", roleGreen, 16, false},
	ElementGreen32F: {"Green32F", roleGreen, 32, true},

	ElementBlue4:   {"Blue4", roleBlue, 4, false},
	ElementBlue5:   {"Blue5", roleBlue, 5, false},
	ElementBlue8:   {"Blue8", roleBlue, 8, false},
	ElementBlue16:  {"Blue16", roleBlue, 16, false},
	ElementBlue32F: {"Blue32F", roleBlue, 32, true},

	ElementGray4:   {"Gray4", roleGray, 4, false},
	ElementGray8:   {"Gray8", roleGray, 8, false},
	ElementGray16:  {"Gray16", roleGray, 16, false},
	ElementGray32F: {"Gray32F", roleGray, 32, true},
}

// IsValid returns true if the element is a known identifier.
func (e Element) IsValid() bool {
	return e < elementCount
}

// info returns the table entry for e. An unknown identifier is a
// configuration error and panics.
func (e Element) info() elementInfo {
	if e >= elementCount {
		panic(fmt.Sprintf("bitmap: unknown pixel element %d", uint8(e)))
	}
	return elementTable[e]
}

// Bits returns the bit width of the element.
// Panics if the element is not a known identifier.
func (e Element) Bits() int { return int(e.info().bits) }

// IsEmpty reports whether e is the terminator element.
func (e Element) IsEmpty() bool { return e.info().role == roleEmpty }

// IsUndefined reports whether e is padding with no channel role.
func (e Element) IsUndefined() bool { return e.info().role == roleUndefined }

// IsIndex reports whether e is a palette index.
func (e Element) IsIndex() bool { return e.info().role == roleIndex }

// IsAlpha reports whether e carries alpha.
func (e Element) IsAlpha() bool { return e.info().role == roleAlpha }

// IsRed reports whether e carries red.
func (e Element) IsRed() bool { return e.info().role == roleRed }

// IsGreen reports whether e carries green.
func (e Element) IsGreen() bool { return e.info().role == roleGreen }

// IsBlue reports whether e carries blue.
func (e Element) IsBlue() bool { return e.info().role == roleBlue }

// IsGrey reports whether e carries luminance.
func (e Element) IsGrey() bool { return e.info().role == roleGray }

// IsFloat reports whether e is stored as an IEEE-754 float.
func (e Element) IsFloat() bool { return e.info().float }

// String returns the element name.
func (e Element) String() string {
	if e >= elementCount {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elementTable[e].name
}

// PixelFormat packs up to four elements into a comparable 32-bit value.
// Element 0 lives in the low byte. Element 0 is the first byte(s) of the
// pixel in memory; for sub-byte elements it is the least significant bits
// of the little-endian pixel word.
type PixelFormat uint32

// Predefined pixel formats.
const (
	FormatGray8   = PixelFormat(uint32(ElementGray8))
	FormatGray16  = PixelFormat(uint32(ElementGray16))
	FormatGray32F = PixelFormat(uint32(ElementGray32F))
	FormatAlpha8  = PixelFormat(uint32(ElementAlpha8))
	FormatIndex8  = PixelFormat(uint32(ElementIndex8))

	FormatBGR565   = PixelFormat(uint32(ElementBlue5) | uint32(ElementGreen6)<<8 | uint32(ElementRed5)<<16)
	FormatBGRA5551 = PixelFormat(uint32(ElementBlue5) | uint32(ElementGreen5)<<8 | uint32(ElementRed5)<<16 | uint32(ElementAlpha1)<<24)
	FormatBGRA4444 = PixelFormat(uint32(ElementBlue4) | uint32(ElementGreen4)<<8 | uint32(ElementRed4)<<16 | uint32(ElementAlpha4)<<24)

	FormatRGB24  = PixelFormat(uint32(ElementRed8) | uint32(ElementGreen8)<<8 | uint32(ElementBlue8)<<16)
	FormatBGR24  = PixelFormat(uint32(ElementBlue8) | uint32(ElementGreen8)<<8 | uint32(ElementRed8)<<16)
	FormatRGBA32 = PixelFormat(uint32(ElementRed8) | uint32(ElementGreen8)<<8 | uint32(ElementBlue8)<<16 | uint32(ElementAlpha8)<<24)
	FormatBGRA32 = PixelFormat(uint32(ElementBlue8) | uint32(ElementGreen8)<<8 | uint32(ElementRed8)<<16 | uint32(ElementAlpha8)<<24)
	FormatARGB32 = PixelFormat(uint32(ElementAlpha8) | uint32(ElementRed8)<<8 | uint32(ElementGreen8)<<16 | uint32(ElementBlue8)<<24)

	FormatRGB96F   = PixelFormat(uint32(ElementRed32F) | uint32(ElementGreen32F)<<8 | uint32(ElementBlue32F)<<16)
	FormatRGBA128F = PixelFormat(uint32(ElementRed32F) | uint32(ElementGreen32F)<<8 | uint32(ElementBlue32F)<<16 | uint32(ElementAlpha32F)<<24)
	FormatBGRA128F = PixelFormat(uint32(ElementBlue32F) | uint32(ElementGreen32F)<<8 | uint32(ElementRed32F)<<16 | uint32(ElementAlpha32F)<<24)
)

var formatNames = map[PixelFormat]string{
	FormatGray8:    "Gray8",
	FormatGray16:   "Gray16",
	FormatGray32F:  "Gray32F",
	FormatAlpha8:   "Alpha8",
	FormatIndex8:   "Index8",
	FormatBGR565:   "BGR565",
	FormatBGRA5551: "BGRA5551",
	FormatBGRA4444: "BGRA4444",
	FormatRGB24:    "RGB24",
	FormatBGR24:    "BGR24",
	FormatRGBA32:   "RGBA32",
	FormatBGRA32:   "BGRA32",
	FormatARGB32:   "ARGB32",
	FormatRGB96F:   "RGB96F",
	FormatRGBA128F: "RGBA128F",
	FormatBGRA128F: "BGRA128F",
}

// NewPixelFormat packs four elements into a format and validates it.
// Unused trailing slots must be ElementEmpty.
func NewPixelFormat(e0, e1, e2, e3 Element) (PixelFormat, error) {
	f := PixelFormat(uint32(e0) | uint32(e1)<<8 | uint32(e2)<<16 | uint32(e3)<<24)
	if err := f.Validate(); err != nil {
		return 0, err
	}
	return f, nil
}

// MustPixelFormat is like NewPixelFormat but panics on an invalid format.
// Intended for package-level declarations.
func MustPixelFormat(e0, e1, e2, e3 Element) PixelFormat {
	f, err := NewPixelFormat(e0, e1, e2, e3)
	if err != nil {
		panic(err)
	}
	return f
}

// ParsePixelFormat returns the predefined format with the given name.
// Matching is case-insensitive.
func ParsePixelFormat(name string) (PixelFormat, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidPixelFormat, name)
}

// Element returns element i. Panics if i is not in 0..3.
func (f PixelFormat) Element(i int) Element {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("bitmap: pixel format element index %d out of range [0, 3]", i))
	}
	return Element(uint32(f) >> (8 * uint(i)))
}

// Elements returns all four element slots.
func (f PixelFormat) Elements() [4]Element {
	return [4]Element{f.Element(0), f.Element(1), f.Element(2), f.Element(3)}
}

// Validate checks that every element is known, that no element follows an
// empty terminator, and that the total width is a non-zero multiple of 8 bits.
func (f PixelFormat) Validate() error {
	bits := 0
	terminated := false
	for _, e := range f.Elements() {
		if !e.IsValid() {
			return fmt.Errorf("%w: unknown element %d", ErrInvalidPixelFormat, uint8(e))
		}
		if e == ElementEmpty {
			terminated = true
			continue
		}
		if terminated {
			return fmt.Errorf("%w: element %v after terminator", ErrInvalidPixelFormat, e)
		}
		bits += e.Bits()
	}
	if bits == 0 || bits%8 != 0 {
		return fmt.Errorf("%w: %d bits is not a whole number of bytes", ErrInvalidPixelFormat, bits)
	}
	return nil
}

// BitCount returns the sum of the element bit widths.
// Panics if any element is unknown.
func (f PixelFormat) BitCount() int {
	bits := 0
	for _, e := range f.Elements() {
		bits += e.Bits()
	}
	return bits
}

// ByteCount returns the number of bytes per pixel.
// Panics if the bit count is not a non-zero multiple of 8; formats that
// passed Validate never panic.
func (f PixelFormat) ByteCount() int {
	bits := f.BitCount()
	if bits == 0 || bits%8 != 0 {
		panic(fmt.Sprintf("bitmap: pixel format %v has %d bits, not a whole number of bytes", f, bits))
	}
	return bits / 8
}

// HasAlpha returns true if any element carries alpha.
func (f PixelFormat) HasAlpha() bool {
	return f.any(Element.IsAlpha)
}

// IsFloat returns true if any element is floating point.
func (f PixelFormat) IsFloat() bool {
	return f.any(Element.IsFloat)
}

// IsIndexed returns true if the format stores palette indices.
func (f PixelFormat) IsIndexed() bool {
	return f.any(Element.IsIndex)
}

// IsGrayscale returns true if the format stores luminance.
func (f PixelFormat) IsGrayscale() bool {
	return f.any(Element.IsGrey)
}

func (f PixelFormat) any(pred func(Element) bool) bool {
	for _, e := range f.Elements() {
		if e.IsValid() && pred(e) {
			return true
		}
	}
	return false
}

// String returns the predefined name of the format, or its element list.
func (f PixelFormat) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	var sb strings.Builder
	for i, e := range f.Elements() {
		if e == ElementEmpty {
			break
		}
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(e.String())
	}
	if sb.Len() == 0 {
		return "Empty"
	}
	return sb.String()
}
