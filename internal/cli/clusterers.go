package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/ocrgrid/tables"
)

func newClusterersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clusterers",
		Short: "List the available column clustering strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tables.ListClusterers() {
				line := name
				if name == tables.DefaultClusterer {
					line += dimStyle.Render(" (default)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}
