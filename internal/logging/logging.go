package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Logger returns the process-wide logger. It discards everything until
// SetLogger installs a real one.
func Logger() *slog.Logger {
	return current.Load()
}

// SetLogger replaces the process-wide logger. A nil logger restores the
// discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	current.Store(l)
}

// For returns the process-wide logger tagged with a component name.
func For(component string) *slog.Logger {
	return Logger().With("component", component)
}
