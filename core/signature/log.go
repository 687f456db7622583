package signature

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// DebugEnv enables debug-level validation tracing when set to any value.
const DebugEnv = "CARTA_DEBUG_VALIDATION"

var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return NewLogger(os.Stderr, os.Getenv(DebugEnv) != "")
})

// NewLogger returns the text logger used for validation tracing. Timestamps
// and levels are dropped for compact output.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
