// File: error_test.go
// Title: Tests for Core Error Implementation
// Description: Covers construction, wrapping, chain inspection and the
//              code/severity/status mappings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("division by zero")

	if err.Error() != "division by zero" {
		t.Errorf("Error() = %q, want %q", err.Error(), "division by zero")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %s, want %s", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeInvalidUnit, SeverityLow},
		{CodeParseError, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeInvalidConfig, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}
	for _, tt := range tests {
		err := New("x").WithCode(tt.code)
		if err.Severity() != tt.want {
			t.Errorf("WithCode(%s).Severity() = %s, want %s", tt.code, err.Severity(), tt.want)
		}
	}
}

func TestDetails(t *testing.T) {
	err := New("bad unit").
		WithDetail("unit", "furlong").
		WithDetails(map[string]interface{}{"category": "length"})

	if v, ok := err.Detail("unit"); !ok || v != "furlong" {
		t.Errorf("Detail(unit) = %v, %v", v, ok)
	}
	details := err.Details()
	details["unit"] = "changed"
	if v, _ := err.Detail("unit"); v != "furlong" {
		t.Error("Details() must return a copy")
	}
}

func TestWrapInheritsCode(t *testing.T) {
	inner := New("parse failed").WithCode(CodeParseError).WithDetail("field", "value")
	outer := Wrap(inner, "convert")

	if outer.Code() != CodeParseError {
		t.Errorf("Code() = %s, want %s", outer.Code(), CodeParseError)
	}
	if v, _ := outer.Detail("field"); v != "value" {
		t.Errorf("Detail(field) = %v, want value", v)
	}
	if outer.Error() != "convert: parse failed" {
		t.Errorf("Error() = %q", outer.Error())
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	base := fmt.Errorf("disk full")
	err := Wrap(base, "append history")
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeUnknown)
	}
	if err.RootCause() != base {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), base)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeInvalidArgument)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}
	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth+1)
	}
	if GetCode(err) != CodeInvalidArgument {
		t.Errorf("GetCode() = %s, want %s", GetCode(err), CodeInvalidArgument)
	}
}

func TestHasCodeThroughForeignWrap(t *testing.T) {
	inner := New("unknown unit").WithCode(CodeInvalidUnit)
	err := fmt.Errorf("tool failed: %w", inner)

	if !HasCode(err, CodeInvalidUnit) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(err, CodeParseError) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(nil, CodeInvalidUnit) {
		t.Error("HasCode(nil) should be false")
	}
	if GetCode(fmt.Errorf("plain")) != CodeUnknown {
		t.Error("GetCode of a plain error should be CodeUnknown")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("r exceeds n").
		WithCode(CodeInvalidArgument).
		WithOperation("combination").
		WithDetail("n", 3).
		WithDetail("r", 5)

	s := err.String()
	for _, want := range []string{"Code: INVALID_ARGUMENT", "Operation: combination", "Details: {n=3, r=5}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "INVALID_ARGUMENT" {
		t.Errorf("json code = %v", decoded["code"])
	}
	if decoded["operation"] != "combination" {
		t.Errorf("json operation = %v", decoded["operation"])
	}
}

func TestCodeMappings(t *testing.T) {
	tests := []struct {
		code     Code
		status   int
		category string
	}{
		{CodeInvalidArgument, 400, "validation"},
		{CodeInvalidUnit, 400, "validation"},
		{CodeParseError, 400, "validation"},
		{CodeNotFound, 404, "generic"},
		{CodeRateLimited, 429, "service"},
		{CodeDatabaseError, 503, "storage"},
		{CodeInvalidConfig, 500, "configuration"},
		{CodeInternal, 500, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.status {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.status)
		}
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %s, want %s", tt.code, got, tt.category)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestSeverity(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low and medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high and critical severities should alert")
	}
	if Severity(42).String() != "unknown" {
		t.Errorf("Severity(42).String() = %s", Severity(42).String())
	}
}
