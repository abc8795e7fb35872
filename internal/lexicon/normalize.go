package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks, recomposes.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, trims, and strips accents. Two words are "the same
// guess" when their folded forms match; win detection compares folded
// forms, so comparison is case- and accent-insensitive by policy.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// OnlyLetters reports whether s consists solely of letters. Digits,
// punctuation, and embedded whitespace all fail.
func OnlyLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
