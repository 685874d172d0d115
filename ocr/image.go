package ocr

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/ocrgrid/format"
)

// ErrUnsupportedImage is returned for data that is not a recognized image.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageInfo describes an image without decoding its pixels.
type ImageInfo struct {
	Format format.Format
	Width  int
	Height int
}

// Inspect identifies the image format and reads its dimensions.
func Inspect(data []byte) (ImageInfo, error) {
	f := format.DetectFromMagic(data)
	if !f.IsImage() {
		return ImageInfo{}, errors.Wrapf(ErrUnsupportedImage, "detected %s", f)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, errors.Wrapf(err, "failed to decode %s header", f)
	}

	return ImageInfo{Format: f, Width: cfg.Width, Height: cfg.Height}, nil
}

// PrepareImage returns image bytes Tesseract can read. Leptonica builds often
// lack WebP support, so WebP input is re-encoded as PNG; every other format is
// returned unchanged.
func PrepareImage(data []byte) ([]byte, error) {
	info, err := Inspect(data)
	if err != nil {
		return nil, err
	}
	if info.Format != format.WebP {
		return data, nil
	}
	return EncodePNG(data)
}

// EncodePNG decodes an image in any supported format and re-encodes it as PNG.
func EncodePNG(data []byte) ([]byte, error) {
	f := format.DetectFromMagic(data)
	if !f.IsImage() {
		return nil, errors.Wrapf(ErrUnsupportedImage, "detected %s", f)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", f)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
