// File: kinds_test.go
// Title: Calculation Error Constructor Tests
// Description: Tests for the builder, constructors and predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()

		if err.Message() != "testmodule.test_op failed" {
			t.Errorf("Message() = %q", err.Message())
		}
		if err.Code() != mrwerror.CodeInternal {
			t.Errorf("Code() = %s, want %s", err.Code(), mrwerror.CodeInternal)
		}
		if err.Operation() != "test_op" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if Module(err) != "testmodule" {
			t.Errorf("Module() = %q", Module(err))
		}
	})

	t.Run("severity override", func(t *testing.T) {
		err := NewErrorBuilder(ModuleHistory).
			Code(mrwerror.CodeInvalidArgument).
			Severity(mrwerror.SeverityHigh).
			Build()
		if err.Severity() != mrwerror.SeverityHigh {
			t.Errorf("Severity() = %s, want high", err.Severity())
		}
	})

	t.Run("cause", func(t *testing.T) {
		cause := stderrors.New("locked")
		err := NewErrorBuilder(ModuleHistory).Cause(cause).Message("append").Build()
		if !stderrors.Is(err, cause) {
			t.Error("builder should wrap the cause")
		}
	})
}

func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		code mrwerror.Code
	}{
		{"invalid argument", InvalidArgument(ModuleNumeric, "combination", 7, "r <= n"), IsInvalidArgument, mrwerror.CodeInvalidArgument},
		{"invalid unit", InvalidUnit(ModuleConvert, "furlong", "length"), IsInvalidUnit, mrwerror.CodeInvalidUnit},
		{"unit mismatch", UnitMismatch(ModuleConvert, "m", "kg", "length"), IsInvalidUnit, mrwerror.CodeInvalidUnit},
		{"parse failure", ParseFailure(ModuleMathx, "weight", "abc", "number"), IsParseError, mrwerror.CodeParseError},
		{"not found", NotFound(ModuleTools, "get", "nope"), IsNotFound, mrwerror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("predicate false for %v", tt.err)
			}
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !tt.pred(wrapped) {
				t.Error("predicate should match through wrapping")
			}
			if mrwerror.GetCode(tt.err) != tt.code {
				t.Errorf("GetCode() = %s, want %s", mrwerror.GetCode(tt.err), tt.code)
			}
		})
	}
}

func TestPredicatesAreDistinct(t *testing.T) {
	err := InvalidUnit(ModuleConvert, "xyz", "speed")
	if IsInvalidArgument(err) || IsParseError(err) || IsNotFound(err) {
		t.Error("InvalidUnit should only match IsInvalidUnit")
	}
	if !IsValidation(err) {
		t.Error("InvalidUnit should be a validation error")
	}
	if IsValidation(OperationFailed(ModuleHistory, "append", stderrors.New("x"))) {
		t.Error("OperationFailed should not be a validation error")
	}
	if IsValidation(stderrors.New("plain")) {
		t.Error("plain errors are not validation errors")
	}
}

func TestParseFailureMessage(t *testing.T) {
	err := ParseFailure(ModuleMathx, "height", "1.2.3", "number")
	if !strings.Contains(err.Error(), `height: cannot parse "1.2.3" as number`) {
		t.Errorf("Error() = %q", err.Error())
	}
	if v, _ := err.Detail("input"); v != "1.2.3" {
		t.Errorf("Detail(input) = %v", v)
	}
}

func TestStorageFailed(t *testing.T) {
	err := StorageFailed(ModuleHistory, "append", stderrors.New("disk full"))
	if err.Code().HTTPStatus() != 503 {
		t.Errorf("HTTPStatus() = %d, want 503", err.Code().HTTPStatus())
	}
	if Module(err) != ModuleHistory {
		t.Errorf("Module() = %q", Module(err))
	}
}
