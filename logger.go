// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitmap

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so slog never
// builds the record in the first place.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

// silent is returned by Logger until SetLogger installs a real logger.
var silent = slog.New(silentHandler{})

// current holds the logger installed by SetLogger; nil means silent.
var current atomic.Pointer[slog.Logger]

// SetLogger configures the logger for bitmap and its sub-packages.
// By default, bitmap produces no log output. Call SetLogger to enable logging.
// Pass nil to restore the default silent behavior.
//
// Log levels used by bitmap:
//   - [slog.LevelDebug]: converter composition, pool reuse, codec selection
//   - [slog.LevelWarn]: non-fatal issues (discarded pool buffers)
//
// Example:
//
//	bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the current logger used by bitmap.
// Sub-packages (codec/, cmd/bmpconv) call this to share the same
// logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
