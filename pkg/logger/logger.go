// Package logger определяет интерфейс логирования, который внедряется во все слои приложения.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger — общий интерфейс логирования приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger создает логгер поверх logrus с текстовым форматом и уровнем из LOG_LEVEL.
func NewLogrusLogger() Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return &logrusLogger{l: l}
}

func (lg *logrusLogger) Debugf(format string, args ...any) {
	lg.l.Debugf(format, args...)
}

func (lg *logrusLogger) Infof(format string, args ...any) {
	lg.l.Infof(format, args...)
}

func (lg *logrusLogger) Warnf(format string, args ...any) {
	lg.l.Warnf(format, args...)
}

func (lg *logrusLogger) Errorf(err error, format string, args ...any) {
	lg.l.WithError(err).Errorf(format, args...)
}
