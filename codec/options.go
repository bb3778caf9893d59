// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package codec

import "image/png"

// Option configures encoding and decoding.
//
// Example:
//
//	err := codec.Save("out.jpg", view, codec.WithJPEGQuality(85))
type Option func(*options)

type options struct {
	jpegQuality    int
	pngCompression png.CompressionLevel
	gifColors      int
	autoOrient     bool
}

func defaultOptions() options {
	return options{
		jpegQuality:    95,
		pngCompression: png.DefaultCompression,
		gifColors:      256,
		autoOrient:     true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithJPEGQuality sets the JPEG quality, clamped to 1-100.
func WithJPEGQuality(quality int) Option {
	return func(o *options) {
		o.jpegQuality = max(1, min(100, quality))
	}
}

// WithPNGCompression sets the PNG compression level.
func WithPNGCompression(level png.CompressionLevel) Option {
	return func(o *options) {
		o.pngCompression = level
	}
}

// WithGIFColors sets the palette size for GIF encoding, clamped to 1-256.
func WithGIFColors(n int) Option {
	return func(o *options) {
		o.gifColors = max(1, min(256, n))
	}
}

// WithAutoOrientation controls whether decoders apply the EXIF orientation
// tag. Enabled by default.
func WithAutoOrientation(enabled bool) Option {
	return func(o *options) {
		o.autoOrient = enabled
	}
}
