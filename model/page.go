package model

// Page holds the tokens an OCR source reported for one page. Numbers are
// 1-indexed.
type Page struct {
	Number int
	Tokens []Token
}

// FindPage returns the page with the given number, or nil.
func FindPage(pages []Page, number int) *Page {
	for i := range pages {
		if pages[i].Number == number {
			return &pages[i]
		}
	}
	return nil
}
