package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// Backend names accepted by New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New returns a Logger for the named backend. Slog output goes to w; zap
// always writes JSON to stderr.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		return NewTextSlogLogger(w, level), nil
	case BackendZap:
		return NewProductionZapLogger(level)
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
