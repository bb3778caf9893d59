// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"sync"

	"github.com/gogpu/bitmap/internal/parallel"
)

// rowPool runs bulk scanline operations. Scanlines never share bytes, so
// bands of rows are processed without locking.
var rowPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Transform calls fn for every scanline, possibly concurrently.
// fn must only modify the row it receives.
func (s Span) Transform(fn func(y int, row []byte)) {
	parallel.Rows(rowPool(), s.info.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			fn(y, s.Scanline(y))
		}
	})
}

// Mirror flips the bitmap in place: horizontal reverses each scanline,
// vertical reverses the order of scanlines.
func (s Span) Mirror(horizontal, vertical bool) {
	if horizontal {
		ps := s.info.pixelSize
		s.Transform(func(_ int, row []byte) {
			for i, j := 0, len(row)-ps; i < j; i, j = i+ps, j-ps {
				for k := range ps {
					row[i+k], row[j+k] = row[j+k], row[i+k]
				}
			}
		})
	}
	if vertical {
		h := s.info.height
		parallel.Rows(rowPool(), h/2, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				a, b := s.Scanline(y), s.Scanline(h-1-y)
				for k := range a {
					a[k], b[k] = b[k], a[k]
				}
			}
		})
	}
}
