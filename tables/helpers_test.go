package tables

import "github.com/tsawler/ocrgrid/model"

// tok creates a token on line (1, 1, line) at the given left edge.
func tok(text string, left, line int) model.Token {
	return model.Token{
		Text:       text,
		Box:        model.NewBox(left, line*30, 50, 20),
		Confidence: 90,
		Line:       model.LineKey{Block: 1, Paragraph: 1, Line: line},
	}
}

// texts returns the text of each token.
func texts(tokens []model.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
