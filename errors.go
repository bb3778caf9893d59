// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrInvalidPixelFormat is returned when a pixel format does not describe
	// a whole number of bytes.
	ErrInvalidPixelFormat = errors.New("bitmap: invalid pixel format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("bitmap: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("bitmap: data buffer too small")

	// ErrOutOfBounds is returned when a region is not contained in the bitmap.
	ErrOutOfBounds = errors.New("bitmap: region out of bounds")

	// ErrPixelSizeMismatch is returned when a typed view is requested for a
	// pixel type whose size differs from the format's byte count.
	ErrPixelSizeMismatch = errors.New("bitmap: pixel type size does not match format")

	// ErrMisaligned is returned when a typed view is requested over a buffer
	// whose start address breaks the pixel type alignment.
	ErrMisaligned = errors.New("bitmap: buffer misaligned for pixel type")

	// ErrUnsupportedConversion is returned when no converter exists for a pair
	// of pixel formats.
	ErrUnsupportedConversion = errors.New("bitmap: format conversion not supported")
)

// ConversionError is returned when two pixel formats cannot be converted.
// It unwraps to ErrUnsupportedConversion.
type ConversionError struct {
	Src PixelFormat
	Dst PixelFormat
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("bitmap: format conversion not supported: %v to %v", e.Src, e.Dst)
}

// Unwrap returns ErrUnsupportedConversion.
func (e *ConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}
