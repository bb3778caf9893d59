// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import "sync"

// Pool is a thread-safe pool of owning bitmap buffers.
//
// Buffers are bucketed by capacity (Info.PaddedByteSize), not by shape, so
// a 100x50 RGBA32 buffer can be reused for a 50x100 one or a 200x50 Gray16
// one. Reused buffers are zeroed before they are handed out.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// capacity. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer for the given layout, reusing a pooled one
// when available. Returns ErrInvalidDimensions for the zero Info.
func (p *Pool) Get(info Info) (*Memory, error) {
	if info.IsEmpty() {
		return NewMemory(info)
	}
	size := info.PaddedByteSize()

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		data := bucket[n-1]
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()

		clear(data)
		Logger().Debug("bitmap: pool hit", "bytes", size)
		return &Memory{info: info, data: data}, nil
	}
	p.mu.Unlock()

	Logger().Debug("bitmap: pool miss", "bytes", size)
	return newMemory(info), nil
}

// Put returns m's buffer to the pool. m must not be used afterwards.
// Buffers that were not allocated at their layout's padded size (for
// example from WrapMemory) are discarded.
func (p *Pool) Put(m *Memory) {
	if m == nil || m.info.IsEmpty() {
		return
	}
	size := m.info.PaddedByteSize()
	if len(m.data) != size {
		Logger().Warn("bitmap: pool discarding buffer", "len", len(m.data), "want", size)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[size] = append(bucket, m.data)
	m.data = nil
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a buffer from the default pool.
func GetFromDefault(info Info) (*Memory, error) {
	return defaultPool.Get(info)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(m *Memory) {
	defaultPool.Put(m)
}
