package text

import (
	"strings"
	"unicode"

	"github.com/msto63/mRW/foundation/core/errors"
)

var umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// NumerologyResult is the reduced number of a name
type NumerologyResult struct {
	Name   string `json:"name"`
	Sum    int    `json:"sum"`
	Number int    `json:"number"`
	Master bool   `json:"master"`
}

// LetterValue returns the Pythagorean value 1..9 of an ASCII letter, 0 otherwise
func LetterValue(r rune) int {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0
	}
	return int(r-'a')%9 + 1
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(n int) int {
	s := 0
	for ; n > 0; n /= 10 {
		s += n % 10
	}
	return s
}

// Numerology sums the letter values of name and reduces the sum to a single
// digit. Master numbers 11, 22 and 33 are not reduced further.
func Numerology(name string) (NumerologyResult, error) {
	sum := 0
	for _, r := range umlauts.Replace(strings.ToLower(name)) {
		sum += LetterValue(r)
	}
	if sum == 0 {
		return NumerologyResult{}, errors.InvalidArgument(errors.ModuleText, "numerology", name, "at least one letter a-z")
	}

	n := sum
	for n > 9 && !isMaster(n) {
		n = digitSum(n)
	}
	return NumerologyResult{Name: name, Sum: sum, Number: n, Master: isMaster(n)}, nil
}
