// internal/logging/logging.go
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the command-line logger. Console output is for humans; the
// default is one JSON object per line. verbose enables debug events.
func New(w io.Writer, verbose, console bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
