// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mRW. The calculation codes
//              (invalid argument, invalid unit, parse error) are the whole
//              error surface of the calculation library; the remaining codes
//              cover the application layer (storage, transport, config).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with platform codes
// - 2026-10-15 v0.2.0: Replaced service codes with the calculation taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Calculation codes
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidUnit     Code = "INVALID_UNIT"
	CodeParseError      Code = "PARSE_ERROR"
	CodeOverflow        Code = "OVERFLOW"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"

	// Storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Service and transport
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeRateLimited        Code = "RATE_LIMITED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeInvalidArgument, CodeInvalidUnit, CodeParseError, CodeOverflow, CodeDivisionByZero,
		CodeDatabaseError, CodeConnectionFailed,
		CodeServiceUnavailable, CodeRateLimited,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidUnit, CodeParseError, CodeOverflow, CodeDivisionByZero, CodeInvalidInput:
		return "validation"
	case CodeDatabaseError, CodeConnectionFailed:
		return "storage"
	case CodeServiceUnavailable, CodeRateLimited, CodeTimeout:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsValidation reports whether the code describes bad caller input.
// Validation errors affect a single calculation only.
func (c Code) IsValidation() bool {
	return c.Category() == "validation"
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidArgument, CodeInvalidUnit, CodeParseError, CodeOverflow,
		CodeDivisionByZero, CodeInvalidInput:
		return 400
	case CodeRateLimited:
		return 429
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeDatabaseError, CodeConnectionFailed:
		return 503
	default:
		return 500
	}
}
