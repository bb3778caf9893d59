// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/bitmap"
)

// Registry maps file extensions to decoders and encoders.
//
// Thread safety: All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
	encoders map[string]Encoder
	fallback Decoder
}

// NewRegistry creates an empty registry. Load falls back to content
// detection for unknown extensions.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		fallback: NewDecoder(),
	}
}

// normalizeExt lowercases ext and strips the leading dot.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Register associates ext with a decoder and an encoder. Either may be nil
// for formats supported in one direction only.
func (r *Registry) Register(ext string, dec Decoder, enc Encoder) {
	ext = normalizeExt(ext)
	r.mu.Lock()
	defer r.mu.Unlock()

	if dec != nil {
		r.decoders[ext] = dec
	}
	if enc != nil {
		r.encoders[ext] = enc
	}
}

// Decoder returns the decoder registered for ext.
func (r *Registry) Decoder(ext string) (Decoder, error) {
	ext = normalizeExt(ext)
	r.mu.RLock()
	defer r.mu.RUnlock()

	if dec, ok := r.decoders[ext]; ok {
		return dec, nil
	}
	if _, ok := r.encoders[ext]; ok {
		return nil, fmt.Errorf("%w: decode %q", ErrNotSupported, ext)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// Encoder returns the encoder registered for ext.
func (r *Registry) Encoder(ext string) (Encoder, error) {
	ext = normalizeExt(ext)
	r.mu.RLock()
	defer r.mu.RUnlock()

	if enc, ok := r.encoders[ext]; ok {
		return enc, nil
	}
	if _, ok := r.decoders[ext]; ok {
		return nil, fmt.Errorf("%w: encode %q", ErrNotSupported, ext)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// Extensions returns the registered extensions that can be decoded and
// those that can be encoded.
func (r *Registry) Extensions() (decode, encode []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for ext := range r.decoders {
		decode = append(decode, ext)
	}
	for ext := range r.encoders {
		encode = append(encode, ext)
	}
	return decode, encode
}

// Decode reads an image, detecting its format from the content.
func (r *Registry) Decode(rd io.Reader) (*bitmap.Memory, error) {
	return r.fallback.Decode(rd)
}

// DecodeBytes decodes an in-memory image, detecting its format.
func (r *Registry) DecodeBytes(data []byte) (*bitmap.Memory, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("codec: decode: empty data")
	}
	return r.Decode(bytes.NewReader(data))
}

// Load decodes the file at path using the decoder for its extension, or
// content detection when the extension is unknown.
func (r *Registry) Load(path string) (*bitmap.Memory, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ext := filepath.Ext(path)
	dec, err := r.Decoder(ext)
	if err != nil {
		bitmap.Logger().Debug("codec: detecting format from content", "path", path, "ext", ext)
		dec = r.fallback
	}
	m, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}
	bitmap.Logger().Debug("codec: loaded", "path", path, "info", m.Info())
	return m, nil
}

// Encode writes src in the format registered for ext.
func (r *Registry) Encode(w io.Writer, ext string, src bitmap.ReadOnlySpan, opts ...Option) error {
	enc, err := r.Encoder(ext)
	if err != nil {
		return err
	}
	if c, ok := enc.(*imagingCodec); ok && len(opts) > 0 {
		enc = c.withOptions(opts)
	}
	return enc.Encode(w, src)
}

// Save encodes src to path in the format matching its extension.
func (r *Registry) Save(path string, src bitmap.ReadOnlySpan, opts ...Option) error {
	ext := filepath.Ext(path)
	if _, err := r.Encoder(ext); err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	if err := r.Encode(f, ext, src, opts...); err != nil {
		_ = f.Close()
		return err
	}
	bitmap.Logger().Debug("codec: saved", "path", path, "info", src.Info())
	return f.Close()
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry with the built-in formats.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, ext := range []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff"} {
			enc, err := NewEncoder(ext)
			if err != nil {
				panic(err)
			}
			r.Register(ext, NewDecoder(), enc)
		}
		r.Register("webp", webpDecoder, nil)
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load decodes a file with the default registry.
func Load(path string) (*bitmap.Memory, error) {
	return Default().Load(path)
}

// Save encodes a file with the default registry.
func Save(path string, src bitmap.ReadOnlySpan, opts ...Option) error {
	return Default().Save(path, src, opts...)
}

// Decode decodes an image with content detection.
func Decode(r io.Reader) (*bitmap.Memory, error) {
	return Default().Decode(r)
}

// Encode encodes src in the format registered for ext in the default registry.
func Encode(w io.Writer, ext string, src bitmap.ReadOnlySpan, opts ...Option) error {
	return Default().Encode(w, ext, src, opts...)
}
