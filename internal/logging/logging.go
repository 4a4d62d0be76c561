// Package logging builds the zerolog logger shared by the application.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel converts a config value to a zerolog level. Unknown or empty
// values fall back to warn so that diagnostics stay out of normal output.
func ParseLevel(s string) zerolog.Level {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(normalized)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// New returns a console logger writing to out at the given level.
func New(out io.Writer, level string) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !IsTerminal(out)}
	return zerolog.New(writer).Level(ParseLevel(level)).With().Timestamp().Logger()
}
