// File: timex_test.go
// Title: Date Function Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package timex

import (
	"testing"
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01", date(2026, 3, 1)},
		{"01.03.2026", date(2026, 3, 1)},
		{"1.3.2026", date(2026, 3, 1)},
		{"2026/03/01", date(2026, 3, 1)},
		{"2026-03-01T15:04:05+02:00", date(2026, 3, 1)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2026-13-01", "31.02.2026"} {
		if _, err := ParseDate(in); !errors.IsParseError(err) {
			t.Errorf("ParseDate(%q) error = %v, want parse error", in, err)
		}
	}
}

func TestAddDaysAndDaysBetween(t *testing.T) {
	lmp := date(2026, 1, 1)
	due := AddDays(lmp, 280)
	if FormatDate(due) != "2026-10-08" {
		t.Errorf("AddDays(2026-01-01, 280) = %s, want 2026-10-08", FormatDate(due))
	}
	if got := DaysBetween(lmp, due); got != 280 {
		t.Errorf("DaysBetween = %d, want 280", got)
	}
	if got := DaysBetween(due, lmp); got != -280 {
		t.Errorf("DaysBetween reversed = %d, want -280", got)
	}

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err == nil {
		a := time.Date(2026, 3, 28, 23, 0, 0, 0, berlin)
		b := time.Date(2026, 3, 30, 1, 0, 0, 0, berlin)
		if got := DaysBetween(a, b); got != 2 {
			t.Errorf("DaysBetween across DST = %d, want 2", got)
		}
	}
}

func TestAge(t *testing.T) {
	birth := date(1990, 6, 15)
	if got := Age(birth, date(2026, 6, 14)); got != 35 {
		t.Errorf("Age day before birthday = %d, want 35", got)
	}
	if got := Age(birth, date(2026, 6, 15)); got != 36 {
		t.Errorf("Age on birthday = %d, want 36", got)
	}
}
