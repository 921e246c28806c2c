package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarwhq/yarw/internal/version"
)

// newVersionCmd implements the version command.
func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of yarw",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yarw version %s\n", info.Full())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
