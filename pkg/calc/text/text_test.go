package text

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/msto63/mRW/foundation/core/errors"
)

func TestReverse(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"abc":   "cba",
		"Grüße": "eßürG",
		"a b":   "b a",
	}
	for in, want := range tests {
		if got := Reverse(in); got != want {
			t.Errorf("Reverse(%q) = %q, want %q", in, got, want)
		}
	}
}

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func TestScramble(t *testing.T) {
	in := "Rechenwerk ist wunderbar, oder?"
	got := Scramble(in, rand.New(rand.NewSource(7)))

	if len([]rune(got)) != len([]rune(in)) {
		t.Fatalf("Scramble changed length: %q", got)
	}
	if sortedRunes(got) != sortedRunes(in) {
		t.Errorf("Scramble(%q) = %q, letters differ", in, got)
	}

	// positions 0 and 9 bound "Rechenwerk", "ist" is too short to change
	gr, ir := []rune(got), []rune(in)
	for _, i := range []int{0, 9, 10, 11, 12, 13, 14, 15, 23, 24, 25, 26, 29, 30} {
		if gr[i] != ir[i] {
			t.Errorf("Scramble moved rune %d: %q", i, got)
		}
	}

	again := Scramble(in, rand.New(rand.NewSource(7)))
	if again != got {
		t.Errorf("Scramble with same seed = %q, want %q", again, got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"hallo welt":  "Hallo Welt",
		"hELLO wORLD": "Hello World",
		"":            "",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWordCount(t *testing.T) {
	got := WordCount("Ein kleiner Test\nzweite Zeile\n")
	want := WordStats{Words: 5, Characters: 30, CharactersNoSpaces: 25, Lines: 2}
	if got != want {
		t.Errorf("WordCount = %+v, want %+v", got, want)
	}
	if got := WordCount(""); got != (WordStats{}) {
		t.Errorf("WordCount(\"\") = %+v", got)
	}
}

func TestNumerology(t *testing.T) {
	tests := []struct {
		name   string
		sum    int
		number int
		master bool
	}{
		{"Anna", 12, 3, false},
		{"John", 20, 2, false},
		{"bi", 11, 11, true},
		{"iiib", 29, 11, true},
		{"Max Mustermann", 50, 5, false},
	}
	for _, tt := range tests {
		got, err := Numerology(tt.name)
		if err != nil {
			t.Fatalf("Numerology(%q) error = %v", tt.name, err)
		}
		if got.Sum != tt.sum || got.Number != tt.number || got.Master != tt.master {
			t.Errorf("Numerology(%q) = %+v, want sum %d number %d master %v",
				tt.name, got, tt.sum, tt.number, tt.master)
		}
	}

	if _, err := Numerology("123 !"); !errors.IsInvalidArgument(err) {
		t.Errorf("Numerology(no letters) error = %v", err)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		in, algo, digest string
		crypto           bool
	}{
		{"", "fnv1a", "cbf29ce484222325", false},
		{"a", "FNV-1a", "af63dc4c8601ec8c", false},
		{"abc", "sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", true},
	}
	for _, tt := range tests {
		got, err := Hash(tt.in, tt.algo)
		if err != nil {
			t.Fatalf("Hash(%q, %s) error = %v", tt.in, tt.algo, err)
		}
		if got.Digest != tt.digest || got.Cryptographic != tt.crypto {
			t.Errorf("Hash(%q, %s) = %+v, want %s", tt.in, tt.algo, got, tt.digest)
		}
	}

	if _, err := Hash("x", "md5"); !errors.IsInvalidArgument(err) {
		t.Errorf("Hash(md5) error = %v", err)
	}
}
