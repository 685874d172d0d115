// Package hocr reads OCR word positions from hOCR documents.
//
// hOCR is the HTML format Tesseract and other engines emit with per-element
// classes and a title attribute carrying geometry:
//
//	<div class='ocr_carea' id='block_1_1' title='bbox 20 30 420 110'>
//	  <p class='ocr_par' id='par_1_1'>
//	    <span class='ocr_line' id='line_1_1' title='bbox 20 30 320 55'>
//	      <span class='ocrx_word' id='word_1_1' title='bbox 20 30 100 55; x_wconf 96'>Name</span>
//
// Blocks (ocr_carea), paragraphs (ocr_par) and lines (ocr_line, ocr_header,
// ocr_caption, ocr_textfloat) are numbered from 1 within their parent in
// document order, which is how Tesseract numbers them in its TSV output.
package hocr

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/tsawler/ocrgrid/internal/textnorm"
	"github.com/tsawler/ocrgrid/model"
)

// ErrMalformed is returned when an hOCR element has unusable properties.
var ErrMalformed = errors.New("malformed hocr")

var lineClasses = []string{"ocr_line", "ocr_header", "ocr_caption", "ocr_textfloat"}

// Open parses an hOCR file.
func Open(filename string) ([]model.Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an hOCR document and returns its word tokens grouped by page.
// Words appearing before any ocr_page element belong to page 1.
func Parse(r io.Reader) ([]model.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML")
	}

	p := &parser{}
	if err := p.walk(doc); err != nil {
		return nil, err
	}
	return p.pages, nil
}

// ParseTokens reads an hOCR document and returns the tokens of its first page.
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

// parser tracks the current position in the hOCR hierarchy.
type parser struct {
	pages []model.Page
	key   model.LineKey
}

func (p *parser) walk(n *html.Node) error {
	if n.Type == html.ElementNode {
		classes := classList(n)
		switch {
		case hasClass(classes, "ocr_page"):
			if err := p.startPage(n); err != nil {
				return err
			}
		case hasClass(classes, "ocr_carea"):
			p.key = model.LineKey{Block: p.key.Block + 1}
		case hasClass(classes, "ocr_par"):
			p.key.Paragraph++
			p.key.Line = 0
		case hasClass(classes, lineClasses...):
			p.key.Line++
		case hasClass(classes, "ocrx_word"):
			return p.addWord(n)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := p.walk(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) startPage(n *html.Node) error {
	number := len(p.pages) + 1
	props := parseTitle(getAttr(n, "title"))
	if v, ok := props["ppageno"]; ok && len(v) == 1 {
		pageNo, err := strconv.Atoi(v[0])
		if err != nil {
			return errors.Wrapf(ErrMalformed, "ppageno %q", v[0])
		}
		number = pageNo + 1
	}
	p.pages = append(p.pages, model.Page{Number: number})
	p.key = model.LineKey{}
	return nil
}

func (p *parser) addWord(n *html.Node) error {
	text := getTextContent(n)
	props := parseTitle(getAttr(n, "title"))

	bbox, ok := props["bbox"]
	if !ok || len(bbox) != 4 {
		return errors.Wrapf(ErrMalformed, "word %q has no bbox", text)
	}
	var coords [4]int
	for i, v := range bbox {
		c, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "word %q bbox %v", text, bbox)
		}
		coords[i] = c
	}

	confidence := -1.0
	if v, ok := props["x_wconf"]; ok && len(v) == 1 {
		c, err := strconv.ParseFloat(v[0], 64)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "word %q x_wconf %q", text, v[0])
		}
		confidence = c
	}

	if len(p.pages) == 0 {
		p.pages = append(p.pages, model.Page{Number: 1})
	}
	page := &p.pages[len(p.pages)-1]
	page.Tokens = append(page.Tokens, model.Token{
		Text:       textnorm.Word(text),
		Box:        model.NewBox(coords[0], coords[1], coords[2]-coords[0], coords[3]-coords[1]),
		Confidence: confidence,
		Line:       p.key,
	})
	return nil
}

// parseTitle splits an hOCR title attribute ("bbox 1 2 3 4; x_wconf 90")
// into property name and values.
func parseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

func classList(n *html.Node) []string {
	return strings.Fields(getAttr(n, "class"))
}

func hasClass(classes []string, want ...string) bool {
	for _, c := range classes {
		for _, w := range want {
			if c == w {
				return true
			}
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// getTextContent returns the concatenated text of a node and its children.
func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(getTextContent(c))
	}
	return sb.String()
}
