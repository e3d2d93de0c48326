// Package logger provides a configured zerolog instance.
package logger

import (
	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/rs/zerolog"
	"io"
	"os"
)

// NewLogger creates a new configured instance of zerolog.Logger.
// It reads the log level and output format from the config and adds default fields like service name and caller.
func NewLogger(cfg *config.Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		// Default to info level if config is invalid or missing
		level = zerolog.InfoLevel
	}

	// Console output for local runs, plain JSON for Lambda and log shippers.
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.Logger.Format == "json" {
		out = os.Stderr
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("service", "sns-notifier").
		Caller().
		Logger().
		Level(level)

	return &logger, nil
}
