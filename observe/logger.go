package observe

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Format "console" renders for humans
// on a terminal; anything else emits JSON lines. Unknown levels fall back
// to info.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "readyprobe").
		Logger()
}
