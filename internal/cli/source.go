package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrgrid"
	"github.com/tsawler/ocrgrid/ocr"
)

// sourceOptions select and configure the input of a command.
type sourceOptions struct {
	page     int
	engine   string
	region   string
	language string
	psm      int
}

func (o *sourceOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&o.page, "page", 1, "Page to read from multi-page TSV, hOCR or Textract input")
	flags.StringVar(&o.engine, "engine", ocrgrid.EngineTesseract, "OCR engine for images: tesseract, textract (env "+EnvEngine+")")
	flags.StringVar(&o.region, "region", "", "AWS region for the textract engine (default from AWS_REGION)")
	flags.StringVar(&o.language, "lang", ocr.DefaultLanguage, "OCR language(s), e.g. eng or eng+deu (env "+EnvLanguage+")")
	flags.IntVar(&o.psm, "psm", -1, "Tesseract page segmentation mode (-1 = engine default)")
}

// extractor opens path with the source settings applied.
func (o *sourceOptions) extractor(cmd *cobra.Command, path string, log logrus.FieldLogger) *ocrgrid.Extractor {
	stringFromEnv(cmd, "lang", EnvLanguage, &o.language)
	stringFromEnv(cmd, "engine", EnvEngine, &o.engine)

	ext := ocrgrid.Open(path).
		Context(cmd.Context()).
		Logger(log).
		Page(o.page).
		Engine(o.engine).
		Region(o.region).
		Language(o.language)
	if o.psm >= 0 {
		ext = ext.PageSegMode(ocr.PageSegMode(o.psm))
	}
	return ext
}
