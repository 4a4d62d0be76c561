package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: " INFO ", want: zerolog.InfoLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "", want: zerolog.WarnLevel},
		{input: "chatty", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("key", "value").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestIsTerminalNonFile(t *testing.T) {
	assert.False(t, IsTerminal(new(bytes.Buffer)))
}
