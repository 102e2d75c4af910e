// File: stringx_test.go
// Title: String Utility Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package stringx

import (
	"math/rand"
	"sort"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"hello", "olleh"},
		{"Grüße", "eßürG"},
		{"日本語", "語本日"},
	}
	for _, tt := range tests {
		if got := Reverse(tt.in); got != tt.want {
			t.Errorf("Reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := Reverse(Reverse(tt.in)); got != tt.in {
			t.Errorf("Reverse(Reverse(%q)) = %q", tt.in, got)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := "rechenwerk"
	out := Shuffle(in, rng)

	a, b := []rune(in), []rune(out)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	if string(a) != string(b) {
		t.Errorf("Shuffle(%q) = %q is not a permutation", in, out)
	}

	again := Shuffle(in, rand.New(rand.NewSource(7)))
	if again != out {
		t.Errorf("Shuffle with the same seed = %q, want %q", again, out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Kalorienrechner", 8, "Kalor..."},
		{"kurz", 8, "kurz"},
		{"abcdef", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max, "..."); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4, '.'); got != "ab.." {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("7", 3, '0'); got != "007" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadLeft("1234", 3, '0'); got != "1234" {
		t.Errorf("PadLeft overflow = %q", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("  Hello, world! It's a well-known  fact.\n")
	want := []string{"Hello", "world", "It's", "a", "well-known", "fact"}
	if len(got) != len(want) {
		t.Fatalf("Words = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(Words("   ")) != 0 {
		t.Error("Words of blank text should be empty")
	}
}

func TestBlankHelpers(t *testing.T) {
	if !IsBlank(" \t") || IsBlank(" x ") {
		t.Error("IsBlank mismatch")
	}
	if got := FirstNonBlank("", " ", "b", "c"); got != "b" {
		t.Errorf("FirstNonBlank = %q", got)
	}
	if got := string(Letters("a1b-2c")); got != "abc" {
		t.Errorf("Letters = %q", got)
	}
}
