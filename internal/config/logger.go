package config

import (
	"github.com/sirupsen/logrus"
)

// NewLogger создает логгер с уровнем из конфига, неизвестный уровень - info
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}
