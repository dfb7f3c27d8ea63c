package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold prepares free text for keyword matching: accents are stripped,
// curly apostrophes become plain ones, sentence punctuation becomes
// spaces and everything is lowercased. Folding is idempotent.
func Fold(raw string) string {
	text := norm.NFD.String(raw)

	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.Mn, r):
			return -1
		case r == '‘' || r == '’':
			return '\''
		case r == '?' || r == '!' || r == '.' || r == ',' || r == ';' || r == ':':
			return ' '
		}
		return r
	}, text)

	return strings.ToLower(text)
}
