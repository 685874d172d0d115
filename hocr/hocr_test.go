package hocr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/ocrgrid/model"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head>
  <title></title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name='ocr-system' content='tesseract 5.3.0' />
 </head>
 <body>
  <div class='ocr_page' id='page_1' title='image "table.png"; bbox 0 0 640 480; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 20 30 420 110">
    <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 20 30 420 110">
     <span class='ocr_line' id='line_1_1' title="bbox 20 30 320 55; baseline 0 -5; x_size 25">
      <span class='ocrx_word' id='word_1_1' title='bbox 20 30 100 55; x_wconf 96'>Name</span>
      <span class='ocrx_word' id='word_1_2' title='bbox 220 30 280 55; x_wconf 95'><strong>Age</strong></span>
     </span>
     <span class='ocr_line' id='line_1_2' title="bbox 20 80 320 105">
      <span class='ocrx_word' id='word_1_3' title='bbox 20 80 90 105; x_wconf 91'>John</span>
      <span class='ocrx_word' id='word_1_4' title='bbox 225 80 255 105; x_wconf 90'>30</span>
     </span>
    </p>
   </div>
   <div class='ocr_carea' id='block_1_2' title="bbox 20 200 420 230">
    <p class='ocr_par' id='par_1_2' title="bbox 20 200 420 230">
     <span class='ocr_header' id='line_1_3' title="bbox 20 200 200 230">
      <span class='ocrx_word' id='word_1_5' title='bbox 20 200 120 230; x_wconf 88'>Tom &amp; Co</span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>`

func TestParse(t *testing.T) {
	pages, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)

	tokens := pages[0].Tokens
	require.Len(t, tokens, 5)

	assert.Equal(t, model.Token{
		Text:       "Name",
		Box:        model.NewBox(20, 30, 80, 25),
		Confidence: 96,
		Line:       model.LineKey{Block: 1, Paragraph: 1, Line: 1},
	}, tokens[0])

	assert.Equal(t, "Age", tokens[1].Text)
	assert.Equal(t, 220, tokens[1].Left)

	assert.Equal(t, model.LineKey{Block: 1, Paragraph: 1, Line: 2}, tokens[2].Line)
	assert.Equal(t, model.LineKey{Block: 1, Paragraph: 1, Line: 2}, tokens[3].Line)

	// A new block restarts paragraph and line numbering.
	assert.Equal(t, model.LineKey{Block: 2, Paragraph: 1, Line: 1}, tokens[4].Line)
	assert.Equal(t, "Tom & Co", tokens[4].Text)
}

func TestParse_PageNumbers(t *testing.T) {
	doc := `<html><body>
<div class='ocr_page' title='bbox 0 0 10 10; ppageno 4'>
 <span class='ocrx_word' title='bbox 1 1 5 5'>five</span>
</div>
<div class='ocr_page' title='bbox 0 0 10 10'>
 <span class='ocrx_word' title='bbox 1 1 5 5'>next</span>
</div>
</body></html>`

	pages, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 5, pages[0].Number)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, -1.0, pages[0].Tokens[0].Confidence)
}

func TestParse_WordsWithoutPage(t *testing.T) {
	doc := `<html><body><span class='ocrx_word' title='bbox 3 4 13 24; x_wconf 70'>solo</span></body></html>`

	tokens, err := ParseTokens(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, model.NewBox(3, 4, 10, 20), tokens[0].Box)
	assert.Equal(t, model.LineKey{}, tokens[0].Line)
}

func TestParse_NoWords(t *testing.T) {
	tokens, err := ParseTokens(strings.NewReader("<html><body><p>plain</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing bbox", `<span class='ocrx_word' title='x_wconf 9'>w</span>`},
		{"short bbox", `<span class='ocrx_word' title='bbox 1 2 3'>w</span>`},
		{"non numeric bbox", `<span class='ocrx_word' title='bbox 1 2 a 4'>w</span>`},
		{"bad confidence", `<span class='ocrx_word' title='bbox 1 2 3 4; x_wconf high'>w</span>`},
		{"bad page number", `<div class='ocr_page' title='ppageno one'></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.hocr")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	pages, err := Open(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Len(t, pages[0].Tokens, 5)

	_, err = Open(filepath.Join(t.TempDir(), "missing.hocr"))
	assert.Error(t, err)
}

func TestParseTitle(t *testing.T) {
	props := parseTitle(`image "a.png"; bbox 0 0 10 20 ; x_wconf 91;;`)
	assert.Equal(t, []string{"0", "0", "10", "20"}, props["bbox"])
	assert.Equal(t, []string{"91"}, props["x_wconf"])
	assert.Equal(t, []string{`"a.png"`}, props["image"])
}
