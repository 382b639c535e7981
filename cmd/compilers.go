package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compilersCmd = &cobra.Command{
	Use:   "compilers",
	Short: "Print the pinned solc version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "solc %s\n", cfg.CompilerDirective())
		return nil
	},
}
