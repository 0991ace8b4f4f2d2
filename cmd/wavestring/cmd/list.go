package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavestring/scenario"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in scenarios.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range scenario.Builtin() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Name, s.Label); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
