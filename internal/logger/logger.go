// Package logger builds the application logger.  Logs go to stderr so that
// stdout carries only the interactive menu text.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cinema-room-manager/internal/config"
)

// New returns a logger with the "cinema" prefix and the level from cfg.
// When cfg.LogFile is set the logs are also appended to that file; the
// returned closer releases it and is never nil.
func New(cfg config.Config) (*log.Logger, io.Closer, error) {
	l := log.New("cinema")
	l.SetLevel(ParseLevel(cfg.LogLevel))

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = f
	}
	l.SetOutput(out)
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	l := log.New("cinema")
	l.SetOutput(io.Discard)
	l.SetLevel(log.OFF)
	return l
}

// ParseLevel maps a level name to a gommon level; unknown names give WARN.
func ParseLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off", "none":
		return log.OFF
	}
	return log.WARN
}
