package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. Unknown or empty levels fall back to info.
func New(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.
		New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &logger
}
