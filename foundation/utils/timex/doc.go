// Package timex provides calendar-date helpers.
//
// Package: timex
// Title: Date Utilities for mRW
// Description: Date parsing and day arithmetic used by the health tools
//              (due dates, ovulation windows) and the date-difference tool.
//              All arithmetic is done on calendar days, so daylight saving
//              changes never shift a result by one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with business day support
// - 2026-10-15 v0.2.0: Reduced to date parsing and calendar-day arithmetic
package timex
