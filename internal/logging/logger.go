// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides the package-level logger used across AppCadastro.
// The TUI owns the terminal, so output goes to a log file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than the logger directly.
var L = clog.New(io.Discard)

// Options configure Setup.
type Options struct {
	// File is the path of the log file. Empty discards all output.
	File string
	// Level is one of debug, info, warn, error.
	Level string
	// Debug forces debug level regardless of Level.
	Debug bool
}

// Setup replaces L according to opts. The returned closer releases the log
// file and is never nil.
func Setup(opts Options) (io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nopCloser{}, err
	}
	if opts.Debug {
		level = clog.DebugLevel
	}

	if opts.File == "" {
		L = clog.New(io.Discard)
		L.SetLevel(level)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nopCloser{}, fmt.Errorf("could not open log file %s: %w", opts.File, err)
	}

	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          "appcadastro",
		Level:           level,
	})
	return f, nil
}

func parseLevel(s string) (clog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return clog.InfoLevel, nil
	}
	level, err := clog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return clog.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
