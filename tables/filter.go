package tables

import "github.com/tsawler/ocrgrid/model"

// FilterTokens returns the tokens whose text is non-empty after trimming
// whitespace, in input order. The input slice is not modified.
func FilterTokens(tokens []model.Token) []model.Token {
	var kept []model.Token
	for _, tok := range tokens {
		if tok.IsBlank() {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
