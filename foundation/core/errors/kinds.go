// File: kinds.go
// Title: Calculation Error Constructors
// Description: Constructors and predicates for the error kinds produced by the
//              calculation library and the application layer.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package errors

import (
	"fmt"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

// InvalidArgument reports a value that violates a domain constraint
func InvalidArgument(module, operation string, input interface{}, expected string) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mrwerror.CodeInvalidArgument).
		Messagef("invalid argument for %s: %v (expected %s)", operation, input, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidUnit reports a unit symbol that is unknown within a category
func InvalidUnit(module, unit, category string) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation("resolve_unit").
		Code(mrwerror.CodeInvalidUnit).
		Messagef("unknown %s unit %q", category, unit).
		Detail("unit", unit).
		Detail("category", category).
		Build()
}

// UnitMismatch reports two units that belong to different categories
func UnitMismatch(module, from, to, category string) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation("convert").
		Code(mrwerror.CodeInvalidUnit).
		Messagef("cannot convert %s to %s within %s", from, to, category).
		Detail("from", from).
		Detail("to", to).
		Detail("category", category).
		Build()
}

// ParseFailure reports malformed numeric or date text
func ParseFailure(module, field, input, expected string) *mrwerror.Error {
	msg := fmt.Sprintf("cannot parse %q as %s", input, expected)
	if field != "" {
		msg = fmt.Sprintf("%s: %s", field, msg)
	}
	return NewErrorBuilder(module).
		Operation("parse").
		Code(mrwerror.CodeParseError).
		Message(msg).
		Detail("field", field).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// NotFound reports a missing resource such as an unknown tool id
func NotFound(module, operation string, identifier interface{}) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mrwerror.CodeNotFound).
		Messagef("%v not found", identifier).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps an infrastructure failure
func OperationFailed(module, operation string, cause error) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(mrwerror.CodeInternal).
		Messagef("%s failed", operation).
		Build()
}

// StorageFailed wraps a persistence failure
func StorageFailed(module, operation string, cause error) *mrwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(mrwerror.CodeDatabaseError).
		Messagef("%s failed", operation).
		Build()
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return mrwerror.HasCode(err, mrwerror.CodeInvalidArgument)
}

// IsInvalidUnit reports whether err carries CodeInvalidUnit
func IsInvalidUnit(err error) bool {
	return mrwerror.HasCode(err, mrwerror.CodeInvalidUnit)
}

// IsParseError reports whether err carries CodeParseError
func IsParseError(err error) bool {
	return mrwerror.HasCode(err, mrwerror.CodeParseError)
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return mrwerror.HasCode(err, mrwerror.CodeNotFound)
}

// IsValidation reports whether err was caused by bad caller input
func IsValidation(err error) bool {
	e, ok := mrwerror.As(err)
	return ok && e.Code().IsValidation()
}

// Module returns the module recorded on err, or ""
func Module(err error) string {
	if e, ok := mrwerror.As(err); ok {
		if m, ok := e.Detail("module"); ok {
			if s, ok := m.(string); ok {
				return s
			}
		}
	}
	return ""
}
