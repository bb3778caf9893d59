// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

// MinRowsPerBand is the smallest band handed to a worker. Shorter images
// run inline on the calling goroutine.
const MinRowsPerBand = 32

// Rows splits [0, height) into contiguous bands and calls fn(y0, y1) for
// each band, concurrently when p is non-nil and there is enough work.
// fn must only touch rows in [y0, y1).
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil || p.Workers() < 2 || height < 2*MinRowsPerBand {
		fn(0, height)
		return
	}

	bands := min(p.Workers(), height/MinRowsPerBand)
	step := (height + bands - 1) / bands
	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		work = append(work, func() { fn(y0, y1) })
	}
	p.ExecuteAll(work)
}
