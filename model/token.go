package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// LineKey identifies the text line a token belongs to, as reported by the OCR
// engine. Keys order lexicographically: block, then paragraph, then line.
type LineKey struct {
	Block     int
	Paragraph int
	Line      int
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to or
// after other.
func (k LineKey) Compare(other LineKey) int {
	switch {
	case k.Block != other.Block:
		return compareInts(k.Block, other.Block)
	case k.Paragraph != other.Paragraph:
		return compareInts(k.Paragraph, other.Paragraph)
	default:
		return compareInts(k.Line, other.Line)
	}
}

// Less reports whether k sorts before other.
func (k LineKey) Less(other LineKey) bool {
	return k.Compare(other) < 0
}

func (k LineKey) String() string {
	return fmt.Sprintf("%d.%d.%d", k.Block, k.Paragraph, k.Line)
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Token is a recognized text fragment positioned on the source image.
type Token struct {
	Text       string
	Box                // Pixel position and size
	Confidence float64 // Engine confidence, 0-100; -1 when unknown
	Line       LineKey
}

// IsBlank reports whether the token text is empty after trimming whitespace.
func (t Token) IsBlank() bool {
	return strings.TrimSpace(t.Text) == ""
}

// Validate checks the geometry preconditions of a token.
func (t Token) Validate() error {
	if !t.Box.IsValid() {
		return errors.Wrapf(ErrInvalidToken, "%q has box %+v", t.Text, t.Box)
	}
	return nil
}

// Row is an ordered run of tokens sharing a LineKey, sorted by Left.
type Row struct {
	Key    LineKey
	Tokens []Token
}

// Lefts returns the Left position of every token in the row.
func (r Row) Lefts() []int {
	lefts := make([]int, len(r.Tokens))
	for i, tok := range r.Tokens {
		lefts[i] = tok.Left
	}
	return lefts
}
