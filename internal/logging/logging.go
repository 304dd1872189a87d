// Package logging builds the structured loggers used by the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
)

// New returns a logger writing to stderr with the given prefix. The level
// comes from SHOOTER_LOG_LEVEL, or fallback when unset or invalid.
func New(prefix string, fallback log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, fallback)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, prefix string, fallback log.Level) *log.Logger {
	level := fallback
	if v := config.GetEnv(config.EnvLogLevel, ""); v != "" {
		if parsed, err := log.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
