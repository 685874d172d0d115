package textract

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awstextract "github.com/aws/aws-sdk-go/service/textract"
	"github.com/aws/aws-sdk-go/service/textract/textractiface"
	"github.com/pkg/errors"

	"github.com/tsawler/ocrgrid/format"
	"github.com/tsawler/ocrgrid/model"
	"github.com/tsawler/ocrgrid/ocr"
)

// Client runs synchronous text detection on single page images.
type Client struct {
	api textractiface.TextractAPI
}

// NewClient creates a client using the default AWS credential chain. An
// empty region falls back to AWS_REGION and the shared config.
func NewClient(region string) (*Client, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}
	return NewClientWithAPI(awstextract.New(sess)), nil
}

// NewClientWithAPI wraps an existing Textract API implementation.
func NewClientWithAPI(api textractiface.TextractAPI) *Client {
	return &Client{api: api}
}

// Tokens detects the words in an image. Coordinates are in pixels of the
// submitted image. Formats Textract does not accept (BMP, WebP) are sent as PNG.
func (c *Client) Tokens(ctx context.Context, imageData []byte) ([]model.Token, error) {
	info, err := ocr.Inspect(imageData)
	if err != nil {
		return nil, err
	}

	data := imageData
	switch info.Format {
	case format.PNG, format.JPEG, format.TIFF:
	default:
		if data, err = ocr.EncodePNG(imageData); err != nil {
			return nil, err
		}
	}

	out, err := c.api.DetectDocumentTextWithContext(ctx, &awstextract.DetectDocumentTextInput{
		Document: &awstextract.Document{Bytes: data},
	})
	if err != nil {
		return nil, errors.Wrap(err, "textract request failed")
	}

	pages := Pages(out.Blocks, info.Width, info.Height)
	if len(pages) == 0 {
		return nil, nil
	}
	return pages[0].Tokens, nil
}
