// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
)

var (
	// File writers opened by NewLogger, closed by CloseFileWriters
	fileWriters   []*BatchWriter
	fileWritersMu sync.Mutex
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text or logfmt (default: json)
	Format string

	// Console output (default: stderr)
	Output io.Writer

	// Optional log file; lines are batched and appended
	File string

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a foundation logger. A log file that cannot be opened
// is reported on the console logger and skipped.
func NewLogger(cfg LoggerConfig) *mrwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var fileErr error
	writers := []io.Writer{output}
	if cfg.File != "" {
		f, err := OpenLogFile(cfg.File)
		if err != nil {
			fileErr = err
		} else {
			bw := NewBatchWriter(f, DefaultBatchWriterConfig())
			fileWritersMu.Lock()
			fileWriters = append(fileWriters, bw)
			fileWritersMu.Unlock()
			writers = append(writers, bw)
		}
	}
	writers = append(writers, cfg.AdditionalOutputs...)
	if len(writers) > 1 {
		output = io.MultiWriter(writers...)
	}

	format, err := mrwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mrwlog.FormatJSON
	}

	logger := mrwlog.NewWithConfig(mrwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	if fileErr != nil {
		logger.WarnWithErr("log file unavailable", fileErr, mrwlog.Fields{"path": cfg.File})
	}
	return logger
}

// NewSimpleLogger creates a console logger with default settings
func NewSimpleLogger(serviceName string) *mrwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// CloseFileWriters flushes and closes all log files opened by NewLogger
func CloseFileWriters() error {
	fileWritersMu.Lock()
	defer fileWritersMu.Unlock()

	var first error
	for _, w := range fileWriters {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	fileWriters = nil
	return first
}

// parseLevel converts a string level; unknown values fall back to info
func parseLevel(level string) mrwlog.Level {
	l, err := mrwlog.ParseLevel(level)
	if err != nil {
		return mrwlog.LevelInfo
	}
	return l
}
