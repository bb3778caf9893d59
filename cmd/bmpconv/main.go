// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command bmpconv loads an image, optionally crops, mirrors, composites and
// converts it to another pixel format, and saves the result.
//
//	bmpconv -in photo.jpg -crop 10,10,320,240 -format BGR565 -out small.bmp
//	bmpconv -in photo.png -format Gray8 -out - > photo.gray
//	bmpconv -job jobs.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/bitmap"
)

func main() {
	var (
		job     Job
		jobPath = flag.String("job", "", "YAML file with a list of jobs")
		info    = flag.Bool("info", false, "print the resulting layout")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.StringVar(&job.In, "in", "", "input image")
	flag.StringVar(&job.Out, "out", "", "output image, or - for raw pixels on stdout")
	flag.StringVar(&job.Format, "format", "", "target pixel format (e.g. RGB24, BGR565, Gray8)")
	flag.StringVar(&job.Crop, "crop", "", "crop region x,y,w,h")
	flag.StringVar(&job.Mirror, "mirror", "", "mirror: h, v or hv")
	flag.StringVar(&job.Overlay, "overlay", "", "image to composite on top")
	flag.StringVar(&job.At, "at", "", "overlay position x,y")
	flag.StringVar(&job.Blend, "blend", "", "blend mode: normal, multiply, screen, overlay")
	flag.IntVar(&job.Quality, "quality", 0, "JPEG quality (1-100)")
	flag.Parse()

	if *verbose {
		bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	jobs := []Job{job}
	if *jobPath != "" {
		var err error
		if jobs, err = loadJobs(*jobPath); err != nil {
			log.Fatalf("bmpconv: %v", err)
		}
	}

	for i, j := range jobs {
		res, err := j.run(os.Stdout)
		if err != nil {
			log.Fatalf("bmpconv: job %d (%s): %v", i, j.In, err)
		}
		if *info {
			fmt.Fprintf(os.Stderr, "%s: %v bytes=%d hash=%016x\n", j.In, res.Info, res.Info.ByteSize(), res.Hash)
		}
	}
}
