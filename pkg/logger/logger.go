package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.InfoLevel)
}

// Configure applies the level from config. Development always logs at debug.
func Configure(level string, development bool) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	if development && parsed < logrus.DebugLevel {
		parsed = logrus.DebugLevel
	}
	base.SetLevel(parsed)
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

func Logger() *logrus.Logger {
	return base
}

func Info(format string, v ...interface{}) {
	base.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	base.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	base.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	base.Warnf(format, v...)
}

// WithFields is the structured variant used on request paths.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return base.WithFields(logrus.Fields(fields))
}

// MaskToken keeps push tokens out of the logs.
func MaskToken(token string) string {
	if len(token) <= 20 {
		return token[:len(token)/2] + "..."
	}
	return token[:20] + "..."
}
