// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. Silent until SetLogger is called.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by the rasterizer.
// Pass nil to restore the default silent logger.
//
// Applications normally call ttf.SetLogger, which forwards here.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current rasterizer logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
