// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Severity drives the log
//              level chosen by log.Logger.LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-15 v0.2.0: Severity mapping for calculation codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input; only one calculation is affected
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreachable database
	SeverityHigh

	// SeverityCritical indicates an error that makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidArgument, CodeInvalidUnit, CodeParseError, CodeOverflow,
		CodeDivisionByZero, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	case CodeDatabaseError, CodeConnectionFailed, CodeServiceUnavailable:
		return SeverityHigh
	case CodeInvalidConfig, CodeMissingConfig:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
