package text

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/mRW/foundation/utils/stringx"
)

// Reverse reverses s rune by rune
func Reverse(s string) string {
	return stringx.Reverse(s)
}

// Scramble keeps the first and last letter of every word and shuffles the
// letters in between. Words shorter than four letters are left alone.
func Scramble(s string, rng *rand.Rand) string {
	runes := []rune(s)
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= 4 {
			inner := stringx.Shuffle(string(runes[start+1:end-1]), rng)
			copy(runes[start+1:end-1], []rune(inner))
		}
		start = -1
	}
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(runes))
	return string(runes)
}

// TitleCase capitalises the first letter of each word and lowercases the rest
func TitleCase(s string) string {
	// a Caser is stateful and must not be shared between goroutines
	return cases.Title(language.German).String(s)
}

// WordStats holds counts for a piece of text
type WordStats struct {
	Words              int `json:"words"`
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Lines              int `json:"lines"`
}

// WordCount counts words, characters and lines of s
func WordCount(s string) WordStats {
	st := WordStats{
		Words:      len(stringx.Words(s)),
		Characters: utf8.RuneCountInString(s),
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			st.CharactersNoSpaces++
		}
	}
	if s != "" {
		st.Lines = strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
	}
	return st
}
