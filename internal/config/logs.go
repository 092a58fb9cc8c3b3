package config

import (
	"fmt"

	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
)

// InitLogging configures the standard logrus logger from settings.
// A bad level falls back to info; a log file adds a rotating hook.
func InitLogging(s *Settings) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(s.GetLogLevel())
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("Unknown log level %q, using info", s.GetLogLevel())
	} else {
		logrus.SetLevel(level)
	}

	file := s.GetLogFile()
	if file == "" {
		return nil
	}

	hook, err := lumberjackrus.NewHook(
		&lumberjackrus.LogFile{
			Filename:   file,
			MaxSize:    s.GetLogFileMaxSizeMB(),
			MaxBackups: 1,
			MaxAge:     7,
			Compress:   false,
			LocalTime:  true,
		},
		logrus.GetLevel(),
		&logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	logrus.AddHook(hook)
	return nil
}
