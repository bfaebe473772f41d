package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the field conventions used across the checker.
// Report rendering goes to stdout separately; the logger only carries stage
// tracing and debug detail on stderr.
type Logger struct {
	logger *logrus.Logger
}

// New creates a logger. The level comes from the LOG_LEVEL environment
// variable and defaults to warn so normal runs stay quiet.
func New() *Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
	})

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if logLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(logLevel)
		}
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return &Logger{logger: logger}
}

// SetLevel overrides the level, typically from a --log-level flag.
func (l *Logger) SetLevel(level string) {
	if logLevel, err := logrus.ParseLevel(level); err == nil {
		l.logger.SetLevel(logLevel)
	}
}

// SetJSON switches to the JSON formatter for log aggregation setups.
func (l *Logger) SetJSON() {
	l.logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
}

// SetOutput redirects log output, used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// WithStage returns an entry tagged with the validation stage name.
func (l *Logger) WithStage(stage string) *logrus.Entry {
	return l.logger.WithFields(logrus.Fields{
		"component": "slcheck",
		"stage":     stage,
	})
}

// WithFile returns an entry tagged with the file under validation.
func (l *Logger) WithFile(path string) *logrus.Entry {
	return l.logger.WithFields(logrus.Fields{
		"component": "slcheck",
		"file":      path,
	})
}
