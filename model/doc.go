// Package model provides the data types shared by every stage of table
// reconstruction.
//
// Token sources (the OCR engines and the hOCR, TSV and Textract parsers)
// produce [Token] values. The tables package turns them into a [Grid].
//
// # Tokens
//
// A [Token] is a recognized word with a pixel [Box] on the source image and
// the [LineKey] the OCR engine assigned it:
//
//	tok := model.Token{
//	    Text: "Total",
//	    Box:  model.Box{Left: 50, Top: 10, Width: 80, Height: 20},
//	    Line: model.LineKey{Block: 1, Paragraph: 1, Line: 1},
//	}
//
// Only Box.Left and Line take part in layout reconstruction. The remaining
// fields are carried through for display.
//
// # Grids
//
// A [Grid] is the rectangular result of reconstruction. An empty grid means no
// text or table was detected:
//
//	if grid.IsEmpty() {
//	    fmt.Println("no text detected")
//	}
//
// Grids render to tab separated text, CSV, TSV and Markdown.
package model
