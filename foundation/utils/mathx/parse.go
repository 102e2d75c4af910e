// File: parse.go
// Title: Strict Number Parsing
// Description: Parsing of user-entered numbers. Accepts an optional sign,
//              a decimal point or decimal comma, thousands groups and
//              exponents. Rejects empty text, NaN, infinities and
//              separators that do not form valid groups of three digits.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15

package mathx

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
)

// groupSeparators may separate thousands groups in the integer part
const groupSeparators = ",._ '"

// ParseNumber parses text into a finite float64
func ParseNumber(s string) (float64, error) {
	return ParseNamedNumber("", s)
}

// ParseNamedNumber is ParseNumber with a field name for the error message.
//
// The decimal mark is decided as follows: when both "." and "," occur, the
// later one is the decimal mark. A single "." is a decimal point. A single
// "," is a decimal comma unless exactly three digits follow it, which is
// ambiguous and rejected. A mark that occurs more than once is a group
// separator. Groups must have three digits after the first.
func ParseNamedNumber(field, s string) (float64, error) {
	clean, ok := canonicalNumber(strings.TrimSpace(s))
	if !ok {
		return 0, errors.ParseFailure(errors.ModuleMathx, field, s, "number")
	}
	lower := strings.ToLower(strings.TrimLeft(clean, "+-"))
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") || strings.HasPrefix(lower, "0x") {
		return 0, errors.ParseFailure(errors.ModuleMathx, field, s, "finite decimal number")
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.ParseFailure(errors.ModuleMathx, field, s, "finite decimal number")
	}
	return f, nil
}

// canonicalNumber rewrites s into strconv syntax: separators removed and
// "." as decimal mark. It reports false for malformed grouping.
func canonicalNumber(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	exp := ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s, exp = s[:i], s[i:]
	}
	if s == "" {
		return "", false
	}

	dots, commas := strings.Count(s, "."), strings.Count(s, ",")
	mark := byte(0)
	switch {
	case dots > 0 && commas > 0:
		mark = '.'
		if strings.LastIndexByte(s, ',') > strings.LastIndexByte(s, '.') {
			mark = ','
		}
		if strings.Count(s, string(mark)) != 1 {
			return "", false
		}
	case dots == 1:
		mark = '.'
	case commas == 1:
		if tail := s[strings.IndexByte(s, ',')+1:]; len(tail) == 3 && isDigits(tail) {
			return "", false
		}
		mark = ','
	}

	intPart, frac := s, ""
	if mark != 0 {
		i := strings.IndexByte(s, mark)
		intPart, frac = s[:i], s[i+1:]
		if frac == "" || !isDigits(frac) {
			return "", false
		}
	}
	digits, ok := ungroup(intPart)
	if !ok {
		return "", false
	}
	out := sign + digits
	if mark != 0 {
		out += "." + frac
	}
	return out + exp, true
}

// ungroup removes thousands separators from an integer part. All separators
// must be the same character and every group after the first must have
// exactly three digits.
func ungroup(s string) (string, bool) {
	i := strings.IndexAny(s, groupSeparators)
	if i < 0 {
		return s, isDigits(s)
	}
	sep := string(s[i])
	groups := strings.Split(s, sep)
	for j, g := range groups {
		if !isDigits(g) || g == "" {
			return "", false
		}
		if j == 0 && len(g) > 3 || j > 0 && len(g) != 3 {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseInt parses text into an int64. A value like "12.0" is accepted,
// "12.5" is not, nor is anything outside the int64 range.
func ParseInt(field, s string) (int64, error) {
	if clean, ok := canonicalNumber(strings.TrimSpace(s)); ok {
		if n, err := strconv.ParseInt(strings.TrimPrefix(clean, "+"), 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := ParseNamedNumber(field, s)
	if err != nil {
		return 0, err
	}
	if n, ok := Int64(f); ok {
		return n, nil
	}
	return 0, errors.ParseFailure(errors.ModuleMathx, field, s, "integer")
}

// Int64 converts a whole f to int64. It reports false for fractions and for
// values outside the int64 range; float64(math.MaxInt64) is 2^63 and thus
// already out of range.
func Int64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// ParseNumberList parses a list separated by commas, semicolons or whitespace.
// Thousands separators are not supported inside lists.
func ParseNumberList(field, s string) ([]float64, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		f, err := ParseNamedNumber(field, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Round rounds f to places fractional digits, halves away from zero
func Round(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// Round2 rounds f to cents
func Round2(f float64) float64 {
	return Round(f, 2)
}

// ApproxEqual reports whether a and b differ by at most tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
