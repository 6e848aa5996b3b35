// Package util provides logging helpers and file system locations.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// The TUI owns stdout, so nothing is logged until SetupLogger points the
// logger at a file.
var logger = log.New(io.Discard)

// SetupLogger opens path for appending and routes all logging there. The
// caller closes the returned file on exit.
func SetupLogger(path, prefix string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	SetLogOutput(f, prefix)
	return f, nil
}

// SetLogOutput routes logging to w.
func SetLogOutput(w io.Writer, prefix string) {
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logger.Error(context, "err", err)
	}
}
