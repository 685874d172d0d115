//go:build ocr

package ocr

import (
	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"

	"github.com/tsawler/ocrgrid/internal/textnorm"
	"github.com/tsawler/ocrgrid/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Tokens performs OCR on image data (PNG, JPEG, BMP, TIFF, WebP) and returns
// one token per recognized word, carrying Tesseract's block, paragraph and
// line numbers.
func (c *Client) Tokens(imageData []byte) ([]model.Token, error) {
	data, err := PrepareImage(imageData)
	if err != nil {
		return nil, err
	}

	if err := c.client.SetImageFromBytes(data); err != nil {
		return nil, errors.Wrap(err, "failed to set image")
	}

	boxes, err := c.client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, errors.Wrap(err, "OCR failed")
	}

	return tokensFromBoxes(boxes), nil
}

func tokensFromBoxes(boxes []gosseract.BoundingBox) []model.Token {
	tokens := make([]model.Token, 0, len(boxes))
	for _, b := range boxes {
		tokens = append(tokens, model.Token{
			Text:       textnorm.Word(b.Word),
			Box:        model.BoxFromRect(b.Box),
			Confidence: b.Confidence,
			Line: model.LineKey{
				Block:     b.BlockNum,
				Paragraph: b.ParNum,
				Line:      b.LineNum,
			},
		})
	}
	return tokens
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	if !mode.IsValid() {
		return errors.Errorf("invalid page segmentation mode %d", mode)
	}
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
