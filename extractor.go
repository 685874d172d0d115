package ocrgrid

import (
	"bytes"
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/ocrgrid/format"
	"github.com/tsawler/ocrgrid/hocr"
	"github.com/tsawler/ocrgrid/model"
	"github.com/tsawler/ocrgrid/ocr"
	"github.com/tsawler/ocrgrid/tables"
	"github.com/tsawler/ocrgrid/textract"
	"github.com/tsawler/ocrgrid/tsv"
)

var (
	// ErrUnsupportedFormat is returned when the input is not an image, TSV,
	// hOCR or Textract document.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrPageNotFound is returned when the selected page is not in the source.
	ErrPageNotFound = errors.New("page not found")

	// ErrNoSource is returned when an Extractor has nothing to read.
	ErrNoSource = errors.New("no input specified")

	// ErrUnknownEngine is returned for an OCR engine name other than
	// EngineTesseract or EngineTextract.
	ErrUnknownEngine = errors.New("unknown OCR engine")
)

// Extractor provides a fluent interface for reconstructing a grid from an
// image, an OCR output file or a token slice. Each configuration method
// returns a new Extractor instance, making it safe for concurrent use and
// allowing method chaining.
type Extractor struct {
	// Source (exactly one is set)
	filename  string
	data      []byte
	tokens    []model.Token
	hasTokens bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor.
// Source data is never modified, so sharing it between copies is safe.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Tolerance sets the maximum horizontal distance in pixels between positions
// that belong to one column. A negative tolerance is an error reported by the
// terminal method.
//
// Example:
//
//	grid, err := ocrgrid.Open("scan.png").Tolerance(25).Grid()
func (e *Extractor) Tolerance(pixels int) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && pixels < 0 {
		newExt.err = errors.Wrapf(tables.ErrInvalidTolerance, "got %d", pixels)
	}
	newExt.options.tolerance = pixels
	return newExt
}

// Clusterer selects a registered column clustering strategy by name.
//
// Example:
//
//	grid, err := ocrgrid.Open("scan.png").Clusterer("gap").Grid()
func (e *Extractor) Clusterer(name string) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && tables.GetClusterer(name) == nil {
		newExt.err = errors.Wrapf(tables.ErrUnknownClusterer, "%q (available: %v)", name, tables.ListClusterers())
	}
	newExt.options.clusterer = name
	return newExt
}

// Page selects the page of a multi-page TSV, hOCR or Textract source
// (1-indexed). Images and token slices have a single page.
func (e *Extractor) Page(n int) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && n < 1 {
		newExt.err = errors.Wrapf(ErrPageNotFound, "page %d", n)
	}
	newExt.options.page = n
	return newExt
}

// Engine selects the OCR engine for image sources: EngineTesseract (the
// default, needs -tags ocr) or EngineTextract (Amazon Textract, needs AWS
// credentials).
//
// Example:
//
//	grid, err := ocrgrid.Open("receipt.jpg").Engine(ocrgrid.EngineTextract).Grid()
func (e *Extractor) Engine(name string) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && name != EngineTesseract && name != EngineTextract {
		newExt.err = errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
	newExt.options.engine = name
	return newExt
}

// Region sets the AWS region used by the Textract engine. When empty the
// AWS_REGION environment variable and shared config apply.
func (e *Extractor) Region(region string) *Extractor {
	newExt := e.clone()
	newExt.options.region = region
	return newExt
}

// Context sets the context for remote OCR requests.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx != nil {
		newExt.options.ctx = ctx
	}
	return newExt
}

// Language sets the OCR language(s), e.g. "eng" or "eng+deu".
// It only affects image sources.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// PageSegMode sets the Tesseract page segmentation mode.
// It only affects image sources.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && !mode.IsValid() {
		newExt.err = errors.Errorf("invalid page segmentation mode %d", mode)
	}
	newExt.options.pageSegMode = mode
	newExt.options.hasPSM = true
	return newExt
}

// Logger sets the logger used for debug output. The default is the logrus
// standard logger.
func (e *Extractor) Logger(log logrus.FieldLogger) *Extractor {
	newExt := e.clone()
	if log != nil {
		newExt.options.logger = log
	}
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Tokens returns the raw tokens of the selected page, as produced by the
// source, before any filtering.
func (e *Extractor) Tokens() ([]model.Token, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.hasTokens {
		if e.options.page != 1 {
			return nil, errors.Wrapf(ErrPageNotFound, "page %d", e.options.page)
		}
		return append([]model.Token(nil), e.tokens...), nil
	}

	data, err := e.readSource()
	if err != nil {
		return nil, err
	}

	f := format.DetectFromMagic(data)
	if f == format.Unknown && e.filename != "" {
		f = format.Detect(e.filename)
	}

	var tokens []model.Token
	switch {
	case f == format.TSV:
		tokens, err = e.pageTokens(tsv.Parse(bytes.NewReader(data)))
	case f == format.HOCR:
		tokens, err = e.pageTokens(hocr.Parse(bytes.NewReader(data)))
	case f == format.Textract:
		tokens, err = e.pageTokens(textract.Parse(bytes.NewReader(data)))
	case f.IsImage():
		tokens, err = e.recognize(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", e.sourceName())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s %s", f, e.sourceName())
	}

	e.options.logger.WithFields(logrus.Fields{
		"source": e.sourceName(),
		"format": f.String(),
		"engine": e.engineName(f),
		"page":   e.options.page,
		"tokens": len(tokens),
	}).Debug("loaded tokens")

	return tokens, nil
}

// FilteredTokens returns the tokens that take part in reconstruction: those
// with non-blank text, in source order.
func (e *Extractor) FilteredTokens() ([]model.Token, error) {
	tokens, err := e.Tokens()
	if err != nil {
		return nil, err
	}
	return tables.FilterTokens(tokens), nil
}

// Anchors returns the column anchors the configured strategy finds for the
// source, before empty columns are pruned.
func (e *Extractor) Anchors() ([]int, error) {
	r, err := e.reconstructor()
	if err != nil {
		return nil, err
	}
	tokens, err := e.Tokens()
	if err != nil {
		return nil, err
	}
	return r.Anchors(tokens), nil
}

// Grid reconstructs the table. A source without any text yields an empty
// grid and a nil error; check grid.IsEmpty().
//
// Example:
//
//	grid, err := ocrgrid.Open("scan.tsv").Grid()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(grid.GetText())
func (e *Extractor) Grid() (*model.Grid, error) {
	r, err := e.reconstructor()
	if err != nil {
		return nil, err
	}
	tokens, err := e.Tokens()
	if err != nil {
		return nil, err
	}
	return r.Reconstruct(tokens)
}

func (e *Extractor) reconstructor() (*tables.Reconstructor, error) {
	if e.err != nil {
		return nil, e.err
	}
	r, err := tables.NewReconstructorWithConfig(e.options.tablesConfig())
	if err != nil {
		return nil, err
	}
	return r.WithLogger(e.options.logger), nil
}

func (e *Extractor) readSource() ([]byte, error) {
	if e.data != nil {
		return e.data, nil
	}
	if e.filename == "" {
		return nil, ErrNoSource
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input")
	}
	return data, nil
}

// pageTokens picks the selected page out of a parsed multi-page source.
// A source with no words at all has an empty page 1.
func (e *Extractor) pageTokens(pages []model.Page, err error) ([]model.Token, error) {
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 && e.options.page == 1 {
		return nil, nil
	}
	page := model.FindPage(pages, e.options.page)
	if page == nil {
		return nil, errors.Wrapf(ErrPageNotFound, "page %d of %d", e.options.page, len(pages))
	}
	return page.Tokens, nil
}

// recognize runs OCR on image data.
func (e *Extractor) recognize(data []byte) ([]model.Token, error) {
	if e.options.page != 1 {
		return nil, errors.Wrapf(ErrPageNotFound, "page %d", e.options.page)
	}
	if e.options.engine == EngineTextract {
		client, err := textract.NewClient(e.options.region)
		if err != nil {
			return nil, err
		}
		return client.Tokens(e.options.ctx, data)
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetLanguage(e.options.language); err != nil {
		return nil, errors.Wrapf(err, "failed to set language %q", e.options.language)
	}
	if e.options.hasPSM {
		if err := client.SetPageSegMode(e.options.pageSegMode); err != nil {
			return nil, err
		}
	}
	return client.Tokens(data)
}

// engineName reports the OCR engine used for a source format, if any.
func (e *Extractor) engineName(f format.Format) string {
	if !f.IsImage() {
		return "none"
	}
	return e.options.engine
}

func (e *Extractor) sourceName() string {
	if e.filename != "" {
		return e.filename
	}
	return "<bytes>"
}
