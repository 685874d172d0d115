package ocrgrid

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/ocrgrid/ocr"
	"github.com/tsawler/ocrgrid/tables"
)

// ExtractOptions holds configuration for grid extraction.
type ExtractOptions struct {
	// Reconstruction
	tolerance int
	clusterer string

	// Page to use from multi-page sources (1-indexed)
	page int

	// OCR engine settings, used for image sources only
	engine      string
	region      string
	language    string
	pageSegMode ocr.PageSegMode
	hasPSM      bool

	logger logrus.FieldLogger
	ctx    context.Context
}

// OCR engines for image sources.
const (
	EngineTesseract = "tesseract"
	EngineTextract  = "textract"
)

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		tolerance: tables.DefaultTolerance,
		clusterer: tables.DefaultClusterer,
		page:      1,
		engine:    EngineTesseract,
		language:  ocr.DefaultLanguage,
		logger:    logrus.StandardLogger(),
		ctx:       context.Background(),
	}
}

// tablesConfig returns the reconstruction part of the options.
func (o ExtractOptions) tablesConfig() tables.Config {
	return tables.Config{
		Tolerance: o.tolerance,
		Clusterer: o.clusterer,
	}
}
