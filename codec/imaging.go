// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package codec

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"

	"github.com/gogpu/bitmap"
)

// imagingCodec decodes any format registered with the image package and
// encodes one imaging.Format.
type imagingCodec struct {
	format imaging.Format
	opts   options
}

// NewDecoder returns a decoder that detects the format from the content.
func NewDecoder(opts ...Option) Decoder {
	return &imagingCodec{opts: buildOptions(opts)}
}

// NewEncoder returns an encoder for the format matching ext
// (".png", "jpg", ...). Returns ErrUnknownExtension for other extensions.
func NewEncoder(ext string, opts ...Option) (Encoder, error) {
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	return &imagingCodec{format: f, opts: buildOptions(opts)}, nil
}

func (c *imagingCodec) Decode(r io.Reader) (*bitmap.Memory, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(c.opts.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	return bitmap.FromImage(img)
}

func (c *imagingCodec) Encode(w io.Writer, src bitmap.ReadOnlySpan) error {
	img, err := bitmap.ToImage(src)
	if err != nil {
		return err
	}
	err = imaging.Encode(w, img, c.format,
		imaging.JPEGQuality(c.opts.jpegQuality),
		imaging.PNGCompressionLevel(c.opts.pngCompression),
		imaging.GIFNumColors(c.opts.gifColors),
	)
	if err != nil {
		return fmt.Errorf("codec: encode %v: %w", c.format, err)
	}
	return nil
}

// withOptions returns a copy of c with opts applied on top of its own.
func (c *imagingCodec) withOptions(opts []Option) *imagingCodec {
	cp := *c
	for _, opt := range opts {
		opt(&cp.opts)
	}
	return &cp
}

// webpDecoder decodes lossy and lossless WebP.
var webpDecoder = DecoderFunc(func(r io.Reader) (*bitmap.Memory, error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode WebP: %w", err)
	}
	return bitmap.FromImage(img)
})
