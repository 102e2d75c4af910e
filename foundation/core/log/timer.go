// File: timer.go
// Title: Operation Timers
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package log

import (
	"time"
)

// Timer measures the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field logged on completion
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" with the elapsed time.
// A second call is a no-op and returns zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, elapsed,
			t.fields, Fields{"operation": t.operation})
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at warn level with the error
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.log(LevelWarn, t.operation+" failed", err, elapsed,
			t.fields, Fields{"operation": t.operation, "success": false})
	}
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true until Stop, StopWithError or Cancel is called
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
