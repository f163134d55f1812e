// Package log routes diagnostic output to a daily file under where.Logs().
//
// Nothing is written unless logs.write is enabled, so the terminal UI never
// competes with log lines on stdout.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/filesystem"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/where"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = logrus.New()
)

func init() {
	logger.SetOutput(io.Discard)
}

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return nil
}

// Enabled reports whether log output is persisted.
func Enabled() bool {
	return enabled
}

// With returns an entry carrying the given fields.
// When logging is disabled the entry writes to io.Discard.
func With(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
