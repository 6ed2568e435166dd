// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TODO: Consider log rotation

// Options selects the sinks and level used by InitLogger.
type Options struct {
	Level    string // debug, info, warn or error
	ToFile   bool
	FilePath string // overrides the XDG state location when set
	ToStderr bool
	Stderr   io.Writer // defaults to os.Stderr
}

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	logFileHandle *os.File
	logFilePath   string
)

// DefaultLogFilePath determines the path for the application log file based on XDG spec.
func DefaultLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	logDir := filepath.Join(stateDir, "numcheck")
	logFile := filepath.Join(logDir, "app.log")
	return logFile, nil
}

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLogFile creates the log directory if needed and opens path for appending.
func openLogFile(path string) (*os.File, error) {
	logDir := filepath.Dir(path)
	// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("error creating log directory %s: %w", logDir, err)
	}
	// Open file for appending (0640: user rw, group r, others ---)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", path, err)
	}
	return file, nil
}

// InitLogger configures the package logger. File sink failures are reported
// on stderr and do not stop the program; the logger then discards records
// unless stderr logging is on.
func InitLogger(opts Options) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var writers []io.Writer
	var file *os.File
	path := ""

	if opts.ToFile {
		var err error
		path = opts.FilePath
		if path == "" {
			path, err = DefaultLogFilePath()
		}
		if err == nil {
			file, err = openLogFile(path)
		}
		if err != nil {
			fmt.Fprintf(stderr, "File logging disabled: %v\n", err)
			path = ""
		} else {
			writers = append(writers, file)
		}
	}

	if opts.ToStderr {
		writers = append(writers, stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})

	mu.Lock()
	closeLocked()
	defaultLogger = slog.New(handler)
	logFileHandle = file
	logFilePath = path
	mu.Unlock()
}

// Close releases the log file, if one is open, and resets the logger to discard.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	return err
}

func closeLocked() error {
	var err error
	if logFileHandle != nil {
		err = logFileHandle.Close()
	}
	logFileHandle = nil
	logFilePath = ""
	return err
}

// Path returns the active log file path, or "" when not logging to a file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logFilePath
}

// L returns the current logger, initializing a discarding one if InitLogger was never called.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}
