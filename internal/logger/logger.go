// Package logger wraps logrus with the environment-driven defaults used
// across the crowdwork-analyzer services.
package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry carrying the service's base fields.
type Logger struct {
	*logrus.Entry
}

// New builds a logger configured from the environment: pretty console output
// locally, JSON elsewhere, level from LOG_LEVEL.
func New() *Logger {
	base := logrus.New()

	env := os.Getenv("ENVIRONMENT")
	if env == "" || env == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	base.SetOutput(os.Stdout)

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		base.SetLevel(logrus.DebugLevel)
	case "warn":
		base.SetLevel(logrus.WarnLevel)
	case "error":
		base.SetLevel(logrus.ErrorLevel)
	default:
		base.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Entry: logrus.NewEntry(base)}
}

// WithComponent tags entries with the emitting component.
func (l *Logger) WithComponent(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// WithRun tags entries with the run they belong to.
func (l *Logger) WithRun(runID string) *logrus.Entry {
	return l.WithField("run_id", runID)
}

// WithError standardizes error logging; a nil error adds nothing.
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}
