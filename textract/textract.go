// Package textract reads word positions from Amazon Textract.
//
// Textract reports geometry as fractions of the page. Tokens are scaled to a
// pixel canvas so the same column tolerance works for every source: the real
// image size when the image is at hand, otherwise an A4 page at 300 DPI.
//
// Textract has no block or paragraph levels below the page, so every token
// gets Block 1 and Paragraph 1, and Line is the 1-based index of its LINE
// block on the page.
package textract

import (
	"encoding/json"
	"io"
	"math"

	"github.com/aws/aws-sdk-go/aws"
	awstextract "github.com/aws/aws-sdk-go/service/textract"
	"github.com/pkg/errors"

	"github.com/tsawler/ocrgrid/internal/textnorm"
	"github.com/tsawler/ocrgrid/model"
)

// Default canvas, used when the source image size is unknown.
const (
	DefaultWidth  = 2480
	DefaultHeight = 3508
)

// ErrMalformed is returned when the input is not a Textract response.
var ErrMalformed = errors.New("malformed textract response")

// Parse reads a saved DetectDocumentText (or GetDocumentTextDetection)
// response, as written by "aws textract detect-document-text", and scales it
// to the default canvas.
func Parse(r io.Reader) ([]model.Page, error) {
	var out awstextract.DetectDocumentTextOutput
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if out.Blocks == nil {
		return nil, errors.Wrap(ErrMalformed, "no Blocks")
	}
	return Pages(out.Blocks, DefaultWidth, DefaultHeight), nil
}

// Pages converts WORD blocks to tokens on a width x height canvas, grouped by
// page in order of first appearance.
func Pages(blocks []*awstextract.Block, width, height int) []model.Page {
	lines := make(map[int64]int)
	lineOf := make(map[string]model.LineKey)
	newLine := func(page int64) model.LineKey {
		lines[page]++
		return model.LineKey{Block: 1, Paragraph: 1, Line: lines[page]}
	}

	for _, b := range blocks {
		if aws.StringValue(b.BlockType) != awstextract.BlockTypeLine {
			continue
		}
		key := newLine(pageOf(b))
		for _, rel := range b.Relationships {
			if aws.StringValue(rel.Type) != awstextract.RelationshipTypeChild {
				continue
			}
			for _, id := range rel.Ids {
				lineOf[aws.StringValue(id)] = key
			}
		}
	}

	var pages []model.Page
	pageIdx := make(map[int64]int)
	for _, b := range blocks {
		if aws.StringValue(b.BlockType) != awstextract.BlockTypeWord {
			continue
		}
		page := pageOf(b)
		key, ok := lineOf[aws.StringValue(b.Id)]
		if !ok {
			key = newLine(page)
		}

		i, seen := pageIdx[page]
		if !seen {
			i = len(pages)
			pageIdx[page] = i
			pages = append(pages, model.Page{Number: int(page)})
		}
		pages[i].Tokens = append(pages[i].Tokens, model.Token{
			Text:       textnorm.Word(aws.StringValue(b.Text)),
			Box:        scaleBox(b.Geometry, width, height),
			Confidence: aws.Float64Value(b.Confidence),
			Line:       key,
		})
	}
	return pages
}

func pageOf(b *awstextract.Block) int64 {
	if b.Page == nil || *b.Page < 1 {
		return 1
	}
	return *b.Page
}

// scaleBox maps a relative bounding box onto the canvas. Textract may report
// tiny negative offsets at the page edge; they clamp to 0.
func scaleBox(g *awstextract.Geometry, width, height int) model.Box {
	if g == nil || g.BoundingBox == nil {
		return model.Box{}
	}
	bb := g.BoundingBox
	scale := func(v *float64, size int) int {
		return max(0, int(math.Round(aws.Float64Value(v)*float64(size))))
	}
	return model.NewBox(
		scale(bb.Left, width),
		scale(bb.Top, height),
		scale(bb.Width, width),
		scale(bb.Height, height),
	)
}
