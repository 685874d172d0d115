// Package ocrgrid reconstructs tables from positioned OCR words.
//
// Basic usage:
//
//	grid, err := ocrgrid.Open("scan.png").Grid()
//	if err != nil {
//	    // handle error
//	}
//	if grid.IsEmpty() {
//	    log.Println("no text detected")
//	}
//	fmt.Print(grid.ToMarkdown())
//
// Images go through Tesseract (build with -tags ocr) or Amazon Textract.
// Tesseract TSV, hOCR and saved Textract responses can be used directly,
// which needs no OCR engine at all:
//
//	grid, err := ocrgrid.Open("scan.tsv").
//	    Tolerance(25).
//	    Clusterer("gap").
//	    Grid()
//
// For advanced use cases, the lower-level tables package is also available.
package ocrgrid

import (
	"github.com/tsawler/ocrgrid/model"
)

// Open returns an Extractor for fluent configuration. The file is read and
// its format detected when a terminal method such as Grid() is called.
//
// Example:
//
//	grid, err := ocrgrid.Open("invoice.jpg").Grid()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates an Extractor from in-memory image, TSV, hOCR or Textract
// data.
// The format is detected from the content.
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: defaultOptions(),
	}
}

// FromTokens creates an Extractor from tokens produced elsewhere, such as a
// different OCR engine.
//
// Example:
//
//	grid, err := ocrgrid.FromTokens(tokens).Tolerance(30).Grid()
func FromTokens(tokens []model.Token) *Extractor {
	return &Extractor{
		tokens:    append([]model.Token(nil), tokens...),
		hasTokens: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	grid := ocrgrid.Must(ocrgrid.Open("scan.tsv").Grid())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
