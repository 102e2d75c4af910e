// Package log provides structured logging for mRW.
//
// Package: log
// Title: Structured Logging for mRW
// Description: A small structured logger with levels, persistent fields,
//              JSON/text/logfmt output and operation timers. Loggers are
//              immutable: every With* call returns a clone, so a component
//              logger can be handed to goroutines without locking.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: Removed async buffering and audit level, sorted field
//                       output, component loggers
//
// Usage:
//
//	logger := log.New().WithFormat(log.FormatText).WithName("convert")
//	logger.Info("conversion done", log.Fields{"from": "km", "to": "mi"})
//
//	timer := logger.StartTimer("amortization")
//	defer timer.Stop()
package log
