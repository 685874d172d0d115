// Package textnorm cleans up word text coming out of OCR engines before it
// becomes a token.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Word returns s in NFC form with non-breaking and other Unicode spaces
// mapped to ASCII space and control and format characters (zero-width
// joiners, byte order marks) removed. Leading and trailing whitespace is
// kept; blank detection happens later in the pipeline.
func Word(s string) string {
	if s == "" {
		return s
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case unicode.IsSpace(r):
			return ' '
		case unicode.Is(unicode.Cf, r), unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	return norm.NFC.String(s)
}
