// internal/logging/logging.go
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application wide logger. Init configures it once at startup.
var Log = logrus.New()

// Init configures the global logger with a specific level.
func Init(level string) {
	configure(Log, level)
}

func configure(log *logrus.Logger, level string) {
	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})

	// Diagnostics belong on the error stream; stdout is left to the banner.
	log.SetOutput(os.Stderr)
	log.SetLevel(ParseLevel(level))
}

// ParseLevel maps a config level name to a logrus level, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
