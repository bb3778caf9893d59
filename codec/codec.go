// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package codec moves bitmaps in and out of encoded image files.
//
// Decoders produce an owning [bitmap.Memory] whose layout satisfies the
// bitmap invariants; encoders consume a read-only view. Implementations are
// looked up by file extension in a [Registry]. The default registry handles
// PNG, JPEG, GIF, BMP and TIFF (read and write) and WebP (read only).
//
//	m, err := codec.Load("photo.jpg")
//	...
//	err = codec.Save("photo.png", m.ReadOnly())
package codec

import (
	"errors"
	"io"

	"github.com/gogpu/bitmap"
)

// Sentinel errors for codec operations.
var (
	// ErrUnknownExtension is returned when no codec is registered for a
	// file extension.
	ErrUnknownExtension = errors.New("codec: unknown file extension")

	// ErrNotSupported is returned when a registered format cannot perform
	// the requested direction (for example encoding WebP).
	ErrNotSupported = errors.New("codec: operation not supported for format")
)

// Decoder reads an encoded image into a new owning bitmap.
type Decoder interface {
	Decode(r io.Reader) (*bitmap.Memory, error)
}

// Encoder writes a bitmap view as an encoded image.
type Encoder interface {
	Encode(w io.Writer, src bitmap.ReadOnlySpan) error
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.Reader) (*bitmap.Memory, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.Reader) (*bitmap.Memory, error) { return f(r) }

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(w io.Writer, src bitmap.ReadOnlySpan) error

// Encode calls f(w, src).
func (f EncoderFunc) Encode(w io.Writer, src bitmap.ReadOnlySpan) error { return f(w, src) }
