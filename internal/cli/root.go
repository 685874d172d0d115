// Package cli implements the ocrgrid command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrgrid/internal/version"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvTolerance = "OCRGRID_TOLERANCE"
	EnvClusterer = "OCRGRID_CLUSTERER"
	EnvLanguage  = "OCRGRID_LANG"
	EnvEngine    = "OCRGRID_ENGINE"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	verbose bool
}

// logger returns a logger writing to w, at debug level when verbose.
func (o *globalOptions) logger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// NewRootCommand builds the ocrgrid command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "ocrgrid",
		Short: "Reconstruct tables from OCR word positions",
		Long: `ocrgrid rebuilds the rows and columns of a table from the positions of
recognized words. Input can be an image (PNG, JPEG, BMP, TIFF, WebP), Tesseract
TSV output, an hOCR document or a saved Amazon Textract response. Images are
read with Tesseract (needs a build with -tags ocr) or, with --engine textract,
with Amazon Textract.

Words on one OCR line form a row. Columns come from clustering the left edges
of every word on the page: positions within the tolerance of a column's
anchor share that column.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = version.Version
	root.SetVersionTemplate(fmt.Sprintf("ocrgrid %s\n", version.String()))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newExtractCommand(opts),
		newTokensCommand(opts),
		newClusterersCommand(),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// stringFromEnv fills *dst from the environment unless the flag was set.
func stringFromEnv(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// intFromEnv fills *dst from the environment unless the flag was set.
func intFromEnv(cmd *cobra.Command, flag, env string, dst *int) error {
	if cmd.Flags().Changed(flag) {
		return nil
	}
	v := os.Getenv(env)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Errorf("%s: %q is not an integer", env, v)
	}
	*dst = n
	return nil
}
