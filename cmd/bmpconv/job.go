// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/codec"
	"github.com/gogpu/bitmap/compose"
)

// Job is one load-transform-save pipeline.
type Job struct {
	In      string `yaml:"in"`
	Out     string `yaml:"out"`
	Format  string `yaml:"format"`
	Crop    string `yaml:"crop"`    // "x,y,w,h"
	Mirror  string `yaml:"mirror"`  // "h", "v" or "hv"
	Overlay string `yaml:"overlay"` // image composited on top
	At      string `yaml:"at"`      // "x,y" overlay position
	Blend   string `yaml:"blend"`   // compose mode name
	Quality int    `yaml:"quality"` // JPEG quality
}

type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// loadJobs reads a YAML job file.
func loadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	var f jobFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, errors.New("job file has no jobs")
	}
	return f.Jobs, nil
}

// parseInts parses n comma-separated integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated integers", s, n)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// result is what a job produced, for reporting.
type result struct {
	Info bitmap.Info
	Hash uint64
}

// run executes the job, writing raw pixels to stdout when Out is "-".
func (j Job) run(stdout io.Writer) (result, error) {
	if j.In == "" {
		return result{}, errors.New("missing input")
	}
	m, err := codec.Load(j.In)
	if err != nil {
		return result{}, err
	}
	view := m.Span()

	if j.Crop != "" {
		v, err := parseInts(j.Crop, 4)
		if err != nil {
			return result{}, fmt.Errorf("crop: %w", err)
		}
		if view, err = view.Slice(bitmap.NewBounds(v[0], v[1], v[2], v[3])); err != nil {
			return result{}, fmt.Errorf("crop: %w", err)
		}
	}

	if j.Mirror != "" {
		view.Mirror(strings.Contains(j.Mirror, "h"), strings.Contains(j.Mirror, "v"))
	}

	if j.Overlay != "" {
		if view, err = j.composite(view); err != nil {
			return result{}, err
		}
	}

	if j.Format != "" {
		f, err := bitmap.ParsePixelFormat(j.Format)
		if err != nil {
			return result{}, err
		}
		if view, err = convert(view.ReadOnly(), f); err != nil {
			return result{}, err
		}
	}

	res := result{Info: view.Info(), Hash: view.Hash()}
	switch j.Out {
	case "":
		return res, nil
	case "-":
		return res, writeRaw(stdout, view.ReadOnly())
	default:
		var opts []codec.Option
		if j.Quality > 0 {
			opts = append(opts, codec.WithJPEGQuality(j.Quality))
		}
		return res, codec.Save(j.Out, view.ReadOnly(), opts...)
	}
}

// composite blends the overlay image onto a BGRA32 copy of view.
func (j Job) composite(view bitmap.Span) (bitmap.Span, error) {
	at := []int{0, 0}
	if j.At != "" {
		var err error
		if at, err = parseInts(j.At, 2); err != nil {
			return bitmap.Span{}, fmt.Errorf("at: %w", err)
		}
	}
	mode := compose.ModeNormal
	if j.Blend != "" {
		var err error
		if mode, err = compose.ParseMode(j.Blend); err != nil {
			return bitmap.Span{}, err
		}
	}

	ov, err := codec.Load(j.Overlay)
	if err != nil {
		return bitmap.Span{}, fmt.Errorf("overlay: %w", err)
	}
	canvas, err := convert(view.ReadOnly(), bitmap.FormatBGRA32)
	if err != nil {
		return bitmap.Span{}, err
	}
	top, err := convert(ov.ReadOnly(), bitmap.FormatBGRA32)
	if err != nil {
		return bitmap.Span{}, err
	}

	dst, err := bitmap.OfType[bitmap.BGRA32](canvas)
	if err != nil {
		return bitmap.Span{}, err
	}
	src, err := bitmap.OfTypeReadOnly[bitmap.BGRA32](top.ReadOnly())
	if err != nil {
		return bitmap.Span{}, err
	}
	bitmap.ApplyPixels(dst, at[0], at[1], src, mode.Func())
	return canvas, nil
}

// convert copies src into a new buffer in format f.
func convert(src bitmap.ReadOnlySpan, f bitmap.PixelFormat) (bitmap.Span, error) {
	info, err := src.Info().WithFormat(f)
	if err != nil {
		return bitmap.Span{}, err
	}
	m, err := bitmap.NewMemory(info)
	if err != nil {
		return bitmap.Span{}, err
	}
	dst := m.Span()
	if err := bitmap.ConvertVia(dst, src, bitmap.FormatBGRA32); err != nil {
		return bitmap.Span{}, err
	}
	return dst, nil
}

// writeRaw writes the pixel bytes of src, scanline by scanline without
// padding. It refuses to write binary data to a terminal.
func writeRaw(w io.Writer, src bitmap.ReadOnlySpan) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("refusing to write raw pixels to a terminal")
	}
	for y := range src.Height() {
		if _, err := w.Write(src.Scanline(y)); err != nil {
			return err
		}
	}
	return nil
}
