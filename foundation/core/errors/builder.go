// File: builder.go
// Title: Error Builder
// Description: Fluent builder that stamps module and operation onto every error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-15 v0.2.0: Typed codes, mRW module identifiers

package errors

import (
	"fmt"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

// Module identifiers used in error details
const (
	ModuleConvert = "convert"
	ModuleFinance = "finance"
	ModuleHealth  = "health"
	ModuleNumeric = "numeric"
	ModuleText    = "text"
	ModuleFun     = "fun"
	ModuleTools   = "tools"
	ModuleHistory = "history"
	ModuleGateway = "gateway"
	ModuleMathx   = "mathx"
	ModuleTimex   = "timex"
	ModuleStringx = "stringx"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mrwerror.Severity
	code      mrwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mrwerror.CodeInternal,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mrwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mrwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mrwerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *mrwerror.Error
	if eb.cause != nil {
		err = mrwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mrwerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}
