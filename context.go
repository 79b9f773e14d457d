package notation

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	_ctxKeyLogger contextKey = iota
)

var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger returns a child context carrying the logger used by parsers
// that were not built with an explicit Logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, _ctxKeyLogger, logger)
}

// LoggerFrom returns the logger stored by WithLogger, or a logger that
// discards everything.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(_ctxKeyLogger).(*slog.Logger); ok && l != nil {
		return l
	}
	return discardLogger
}
