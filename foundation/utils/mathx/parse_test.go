// File: parse_test.go
// Title: Number Parsing Tests
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15

package mathx

import (
	"math"
	"testing"

	"github.com/msto63/mRW/foundation/core/errors"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{" -3.5 ", -3.5},
		{"+7", 7},
		{"1,250,000", 1250000},
		{"1_000", 1000},
		{"2.5e3", 2500},
		{".5", 0.5},
		{"1,5", 1.5},
		{"-0,25", -0.25},
		{"1.234,5", 1234.5},
		{"1.250.000", 1250000},
		{"1,250,000.50", 1250000.5},
		{"1 000 000", 1000000},
		{"12'500", 12500},
		{"2,5e3", 2500},
		{"0.125", 0.125},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if err != nil {
			t.Errorf("ParseNumber(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1.2.3", "NaN", "inf", "-Infinity", "0x10", "1e999", "12kg",
		"1,250", "12,34,5", "1 2 3", "1,2.3,4", "1.234.5", "1,000 000", "12345,678", "1,", ",", "+", "e5", "1.2e"} {
		_, err := ParseNumber(in)
		if !errors.IsParseError(err) {
			t.Errorf("ParseNumber(%q) error = %v, want parse error", in, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	if n, err := ParseInt("n", "12"); err != nil || n != 12 {
		t.Errorf("ParseInt(12) = %d, %v", n, err)
	}
	if n, err := ParseInt("n", "12.0"); err != nil || n != 12 {
		t.Errorf("ParseInt(12.0) = %d, %v", n, err)
	}
	if _, err := ParseInt("n", "12.5"); !errors.IsParseError(err) {
		t.Errorf("ParseInt(12.5) error = %v, want parse error", err)
	}
	if n, err := ParseInt("n", "1.000.000"); err != nil || n != 1000000 {
		t.Errorf("ParseInt(1.000.000) = %d, %v", n, err)
	}
}

func TestParseIntRange(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"9223372036854775807", math.MaxInt64, false},
		{"-9223372036854775808", math.MinInt64, false},
		{"9223372036854775808", 0, true},
		{"9.223372036854775808e18", 0, true},
		{"1e19", 0, true},
		{"-1e19", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInt("n", tt.in)
		if tt.wantErr {
			if !errors.IsParseError(err) {
				t.Errorf("ParseInt(%q) = %d, %v, want parse error", tt.in, got, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseInt(%q) = %d, %v, want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
		ok   bool
	}{
		{42, 42, true},
		{-7, -7, true},
		{0.5, 0, false},
		{math.Ldexp(1, 63), 0, false},
		{-math.Ldexp(1, 63), math.MinInt64, true},
		{math.Ldexp(1, 62), 1 << 62, true},
	}
	for _, tt := range tests {
		got, ok := Int64(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Int64(%v) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseNumberList(t *testing.T) {
	got, err := ParseNumberList("values", "1, 2;3  4.5")
	if err != nil {
		t.Fatalf("ParseNumberList error = %v", err)
	}
	want := []float64{1, 2, 3, 4.5}
	if len(got) != len(want) {
		t.Fatalf("ParseNumberList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseNumberList[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := ParseNumberList("values", "1, x, 3"); !errors.IsParseError(err) {
		t.Errorf("ParseNumberList with x error = %v", err)
	}
}

func TestRound(t *testing.T) {
	if got := Round2(1199.1010503); got != 1199.10 {
		t.Errorf("Round2 = %v, want 1199.10", got)
	}
	if got := Round(2.5, 0); got != 3 {
		t.Errorf("Round(2.5, 0) = %v, want 3", got)
	}
	if !ApproxEqual(0.1+0.2, 0.3, 1e-9) {
		t.Error("ApproxEqual(0.1+0.2, 0.3) should be true")
	}
}
