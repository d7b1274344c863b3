// Package logger provides the configured zerolog logger shared by the
// service and the operations CLI.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to stdout, tagged with the
// service name. PORTFOLIO_LOG_LEVEL overrides the default info level;
// unknown values are ignored.
func New(serviceName string) zerolog.Logger {
	level := zerolog.InfoLevel
	if raw := os.Getenv("PORTFOLIO_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	return zerolog.New(os.Stdout).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
