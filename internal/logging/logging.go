// Package logging configures the application-wide zerolog logger: a console
// writer for interactive runs plus a rotating log file so desktop users can
// attach logs to bug reports.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// LogFileName is the rotating log file name inside the log directory.
const LogFileName = "thingibrowser.log"

// New builds the root logger. level is a zerolog level name ("debug",
// "info", ...); unknown names fall back to info. logDir may be empty to log
// to the console only.
func New(level, logDir string) zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(logDir, LogFileName),
				MaxSize:    maxLogSizeMB,
				MaxBackups: maxLogBackups,
				LocalTime:  true,
			})
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parsedLevel).
		With().Timestamp().Logger()
}
