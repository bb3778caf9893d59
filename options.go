// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

// InfoOption configures an Info during creation.
//
// Example:
//
//	// Tightly packed rows
//	info, err := bitmap.NewInfo(640, 480, bitmap.FormatRGB24)
//
//	// Rows aligned to 4 bytes, as BMP files store them
//	info, err := bitmap.NewInfo(640, 480, bitmap.FormatRGB24, bitmap.WithStride(1920))
type InfoOption func(*infoOptions)

// infoOptions holds optional configuration for Info creation.
type infoOptions struct {
	stride    int
	strideSet bool // false means width * pixel size
	align     int
}

// WithStride sets an explicit scanline size in bytes.
// The stride must be at least width * pixel size.
func WithStride(stride int) InfoOption {
	return func(o *infoOptions) {
		o.stride = stride
		o.strideSet = true
	}
}

// WithAlignedStride rounds the default stride up to a multiple of align bytes.
// Values below 2 leave the stride unpadded.
func WithAlignedStride(align int) InfoOption {
	return func(o *infoOptions) {
		o.align = align
	}
}
