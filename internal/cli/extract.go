package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrgrid/tables"
)

type extractOptions struct {
	source    sourceOptions
	tolerance int
	clusterer string
	format    string
	output    string
}

func newExtractCommand(global *globalOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Reconstruct the table in FILE",
		Long: `Reconstruct the table in an image, Tesseract TSV file, hOCR document or
Textract response and print it. Output formats: table, text, csv, tsv, markdown.`,
		Example: `  ocrgrid extract invoice.png
  ocrgrid extract scan.tsv -t 25 -f csv -o scan.csv
  OCRGRID_CLUSTERER=gap ocrgrid extract scan.hocr
  ocrgrid extract receipt.jpg --engine textract --region eu-west-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, global, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.tolerance, "tolerance", "t", tables.DefaultTolerance, "Column tolerance in pixels (env "+EnvTolerance+")")
	flags.StringVar(&opts.clusterer, "clusterer", tables.DefaultClusterer, "Column clustering strategy (env "+EnvClusterer+")")
	flags.StringVarP(&opts.format, "format", "f", formatTable, "Output format: table, text, csv, tsv, markdown")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to a file instead of stdout")
	opts.source.bind(cmd)

	return cmd
}

func runExtract(cmd *cobra.Command, global *globalOptions, opts *extractOptions, path string) error {
	if err := intFromEnv(cmd, "tolerance", EnvTolerance, &opts.tolerance); err != nil {
		return err
	}
	stringFromEnv(cmd, "clusterer", EnvClusterer, &opts.clusterer)
	if !isGridFormat(opts.format) {
		return errors.Errorf("unknown output format %q", opts.format)
	}

	log := global.logger(cmd.ErrOrStderr())

	grid, err := opts.source.extractor(cmd, path, log).
		Tolerance(opts.tolerance).
		Clusterer(opts.clusterer).
		Grid()
	if err != nil {
		return err
	}

	if grid.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No text detected"))
		return nil
	}

	rendered := renderGrid(grid, opts.format)
	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(rendered), 0o644); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	log.WithFields(logrus.Fields{
		"path":    opts.output,
		"format":  opts.format,
		"rows":    grid.RowCount(),
		"columns": grid.ColCount(),
	}).Info("wrote grid")
	return nil
}
