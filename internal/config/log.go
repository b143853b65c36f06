package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// OpenLog returns a logger that appends to ~/.abacus/abacus.log. The
// terminal belongs to the UI, so nothing is logged to stderr. The returned
// closer must be called on exit.
func OpenLog(debug bool) (*logrus.Logger, io.Closer, error) {
	path, err := GlobalLogFile()
	if err != nil {
		return nil, nil, err
	}
	if err := EnsureGlobalDir(); err != nil {
		return nil, nil, fmt.Errorf("failed to create global directory: %w", err)
	}

	f, err := appFs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewLogger(f, debug)
	return logger, f, nil
}

// NewLogger builds the text logger used across abacus.
func NewLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05",
	})
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *logrus.Logger {
	return NewLogger(io.Discard, false)
}
