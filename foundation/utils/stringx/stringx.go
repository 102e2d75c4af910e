// File: stringx.go
// Title: Core String Utility Functions
// Description: Rune-aware string operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package stringx

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Reverse reverses s rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Shuffle returns a random permutation of the runes of s drawn from rng
func Shuffle(s string, rng *rand.Rand) string {
	runes := []rune(s)
	rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

// Truncate shortens s to at most maxLen runes including the ellipsis
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	el := []rune(ellipsis)
	if len(el) >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-len(el)]) + ellipsis
}

// PadRight pads s with pad up to width runes
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// PadLeft pads s on the left with pad up to width runes
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}

// Words splits s into words. A word is a maximal run of letters, digits,
// apostrophes or hyphens.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' || r == '’')
	})
}

// Letters returns only the letters of s
func Letters(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}
