package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrgrid/tables"
)

type tokensOptions struct {
	source sourceOptions
	all    bool
	format string
}

func newTokensCommand(global *globalOptions) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "List the recognized words in FILE with their positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatTable && opts.format != formatTSV {
				return errors.Errorf("unknown output format %q", opts.format)
			}

			ext := opts.source.extractor(cmd, args[0], global.logger(cmd.ErrOrStderr()))
			tokens, err := ext.Tokens()
			if err != nil {
				return err
			}
			if !opts.all {
				tokens = tables.FilterTokens(tokens)
			}

			if len(tokens) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No text detected"))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTokens(tokens, opts.format))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Include words with blank text")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "Output format: table, tsv")
	opts.source.bind(cmd)

	return cmd
}
