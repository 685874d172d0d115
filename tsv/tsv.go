// Package tsv reads the tab separated word table Tesseract writes with
// "tesseract image out tsv" (the same table pytesseract's image_to_data
// returns).
//
// The first line is a header naming the columns:
//
//	level page_num block_num par_num line_num word_num left top width height conf text
//
// Columns are located by name, so extra or reordered columns are accepted.
// Only word rows (level 5) become tokens. Rows at other levels describe pages,
// blocks, paragraphs and lines and are skipped.
package tsv

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tsawler/ocrgrid/internal/textnorm"
	"github.com/tsawler/ocrgrid/model"
)

// WordLevel is the value of the level column for word rows.
const WordLevel = 5

// ErrMalformed is returned when the input is not a Tesseract TSV table.
var ErrMalformed = errors.New("malformed tsv")

var requiredColumns = []string{
	"block_num", "par_num", "line_num", "left", "top", "width", "height", "text",
}

type columns map[string]int

func (c columns) has(name string) bool {
	_, ok := c[name]
	return ok
}

// Parse reads a TSV table and returns its word tokens grouped by page, in
// page order of first appearance. Tables without a page_num column are
// treated as a single page 1.
func Parse(r io.Reader) ([]model.Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var (
		cols    columns
		pages   []model.Page
		pageIdx = make(map[int]int)
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if cols == nil {
			if strings.TrimSpace(line) == "" {
				continue
			}
			var err error
			if cols, err = parseHeader(line); err != nil {
				return nil, err
			}
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if cols.has("level") {
			level, err := intField(fields, cols, "level", lineNo)
			if err != nil {
				return nil, err
			}
			if level != WordLevel {
				continue
			}
		}

		page := 1
		if cols.has("page_num") {
			var err error
			if page, err = intField(fields, cols, "page_num", lineNo); err != nil {
				return nil, err
			}
		}

		tok, err := parseWord(fields, cols, lineNo)
		if err != nil {
			return nil, err
		}

		i, ok := pageIdx[page]
		if !ok {
			i = len(pages)
			pageIdx[page] = i
			pages = append(pages, model.Page{Number: page})
		}
		pages[i].Tokens = append(pages[i].Tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read tsv")
	}
	if cols == nil {
		return nil, errors.Wrap(ErrMalformed, "missing header")
	}

	return pages, nil
}

// ParseTokens reads a TSV table and returns the tokens of its first page.
func ParseTokens(r io.Reader) ([]model.Token, error) {
	pages, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return pages[0].Tokens, nil
}

func parseHeader(line string) (columns, error) {
	cols := make(columns)
	for i, name := range strings.Split(line, "\t") {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if !cols.has(name) {
			return nil, errors.Wrapf(ErrMalformed, "header missing column %q", name)
		}
	}
	return cols, nil
}

func parseWord(fields []string, cols columns, lineNo int) (model.Token, error) {
	var (
		tok model.Token
		err error
	)

	ints := []struct {
		name string
		dst  *int
	}{
		{"block_num", &tok.Line.Block},
		{"par_num", &tok.Line.Paragraph},
		{"line_num", &tok.Line.Line},
		{"left", &tok.Left},
		{"top", &tok.Top},
		{"width", &tok.Width},
		{"height", &tok.Height},
	}
	for _, f := range ints {
		if *f.dst, err = intField(fields, cols, f.name, lineNo); err != nil {
			return tok, err
		}
	}

	tok.Confidence = -1
	if cols.has("conf") {
		raw := field(fields, cols, "conf")
		if raw != "" {
			if tok.Confidence, err = strconv.ParseFloat(raw, 64); err != nil {
				return tok, errors.Wrapf(ErrMalformed, "line %d: conf %q", lineNo, raw)
			}
		}
	}

	// Text is the last column in Tesseract output and may itself be missing
	// for blank words.
	text := field(fields, cols, "text")
	if idx := cols["text"]; idx == len(cols)-1 && len(fields) > len(cols) {
		text = strings.Join(fields[idx:], "\t")
	}
	tok.Text = textnorm.Word(text)

	return tok, nil
}

func field(fields []string, cols columns, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func intField(fields []string, cols columns, name string, lineNo int) (int, error) {
	raw := field(fields, cols, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "line %d: %s %q", lineNo, name, raw)
	}
	return v, nil
}
