package ttf

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ttf/rasterizer"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ttf and the rasterizer package.
// By default, ttf produces no log output. Pass nil to restore the default
// silent behavior.
//
// Log levels used by ttf:
//   - [slog.LevelDebug]: face lifecycle, glyph substitution, render sizes
//   - [slog.LevelWarn]: failed loads and resizes, handle release errors
//
// Example:
//
//	ttf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
		rasterizer.SetLogger(nil)
	} else {
		rasterizer.SetLogger(l)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ttf.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
