// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import "fmt"

// Memory is an owning bitmap buffer. Views obtained from it borrow its
// bytes and stay valid for as long as the Memory is reachable.
//
// Memory allocates Info().PaddedByteSize() bytes so every scanline,
// including the last, is fully strided.
type Memory struct {
	info Info
	data []byte
}

// NewMemory allocates a zeroed buffer for the given layout.
// Returns ErrInvalidDimensions for the zero Info.
func NewMemory(info Info) (*Memory, error) {
	if info.IsEmpty() {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}
	return newMemory(info), nil
}

func newMemory(info Info) *Memory {
	return &Memory{
		info: info,
		data: make([]byte, info.PaddedByteSize()),
	}
}

// NewMemoryOf is a shorthand for NewInfo followed by NewMemory.
func NewMemoryOf(width, height int, format PixelFormat, opts ...InfoOption) (*Memory, error) {
	info, err := NewInfo(width, height, format, opts...)
	if err != nil {
		return nil, err
	}
	return newMemory(info), nil
}

// WrapMemory takes ownership of data without copying.
// Returns ErrDataTooSmall if len(data) < info.ByteSize().
func WrapMemory(info Info, data []byte) (*Memory, error) {
	if _, err := newView(info, data); err != nil {
		return nil, err
	}
	return &Memory{info: info, data: data}, nil
}

// Info returns the layout.
func (m *Memory) Info() Info { return m.info }

// Bytes returns the whole owned buffer, including trailing padding.
func (m *Memory) Bytes() []byte { return m.data }

// Span returns a writable view of the whole bitmap.
func (m *Memory) Span() Span {
	return Span{m.view()}
}

// ReadOnly returns a read-only view of the whole bitmap.
func (m *Memory) ReadOnly() ReadOnlySpan {
	return ReadOnlySpan{m.view()}
}

// Slice returns a writable view of region b.
func (m *Memory) Slice(b Bounds) (Span, error) {
	return m.Span().Slice(b)
}

// Clone returns a deep copy with the same layout.
func (m *Memory) Clone() *Memory {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return &Memory{info: m.info, data: data}
}

func (m *Memory) view() view {
	size := m.info.ByteSize()
	return view{info: m.info, data: m.data[:size:size]}
}
