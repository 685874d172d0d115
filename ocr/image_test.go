package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/ocrgrid/format"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	return img
}

func TestInspect(t *testing.T) {
	img := testImage(64, 32)

	encoders := []struct {
		name   string
		format format.Format
		encode func(*bytes.Buffer) error
	}{
		{"png", format.PNG, func(b *bytes.Buffer) error { return png.Encode(b, img) }},
		{"jpeg", format.JPEG, func(b *bytes.Buffer) error { return jpeg.Encode(b, img, nil) }},
		{"bmp", format.BMP, func(b *bytes.Buffer) error { return bmp.Encode(b, img) }},
		{"tiff", format.TIFF, func(b *bytes.Buffer) error { return tiff.Encode(b, img, nil) }},
	}

	for _, tt := range encoders {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf))

			info, err := Inspect(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.format, info.Format)
			assert.Equal(t, 64, info.Width)
			assert.Equal(t, 32, info.Height)
		})
	}
}

func TestInspectRejectsNonImages(t *testing.T) {
	inputs := map[string][]byte{
		"empty": nil,
		"text":  []byte("just some text"),
		"tsv":   []byte("level\tpage_num\tblock_num\n"),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Inspect(data)
			assert.True(t, errors.Is(err, ErrUnsupportedImage))
		})
	}
}

func TestInspectTruncatedHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(8, 8)))

	_, err := Inspect(buf.Bytes()[:12])
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedImage))
}

func TestPrepareImagePassesThroughSupportedFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(10, 10)))

	out, err := PrepareImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), out)
}

func TestPrepareImageRejectsNonImages(t *testing.T) {
	_, err := PrepareImage([]byte("not an image"))
	assert.True(t, errors.Is(err, ErrUnsupportedImage))
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage(20, 12)))

	out, err := EncodePNG(buf.Bytes())
	require.NoError(t, err)

	info, err := Inspect(out)
	require.NoError(t, err)
	assert.Equal(t, ImageInfo{Format: format.PNG, Width: 20, Height: 12}, info)

	_, err = EncodePNG([]byte("nope"))
	assert.True(t, errors.Is(err, ErrUnsupportedImage))
}

func TestPageSegModeIsValid(t *testing.T) {
	assert.True(t, PSM_OSD_ONLY.IsValid())
	assert.True(t, PSM_SINGLE_BLOCK.IsValid())
	assert.True(t, PSM_RAW_LINE.IsValid())
	assert.False(t, PageSegMode(-1).IsValid())
	assert.False(t, PageSegMode(14).IsValid())
}
