// File: timex.go
// Title: Calendar Date Functions
// Description: Date parsing and calendar-day arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package timex

import (
	"strings"
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
)

// DateLayout is the canonical output layout
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"02.01.2006",
	"2.1.2006",
	"2006/01/02",
	time.RFC3339,
}

// ParseDate parses a calendar date. Accepted: YYYY-MM-DD, DD.MM.YYYY,
// YYYY/MM/DD and RFC 3339. The result is midnight UTC.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return StartOfDay(t), nil
		}
	}
	return time.Time{}, errors.ParseFailure(errors.ModuleTimex, "", value, "date (YYYY-MM-DD or DD.MM.YYYY)")
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight UTC of t's calendar date
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays adds n calendar days
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from start to end.
// The result is negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	d := StartOfDay(end).Sub(StartOfDay(start))
	return int(d.Hours() / 24)
}

// Age returns the number of full years between birth and ref
func Age(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years
}

// Weekday returns the English weekday name of t
func Weekday(t time.Time) string {
	return t.Weekday().String()
}
