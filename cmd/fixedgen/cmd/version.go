package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the fixedgen release.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show fixedgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fixedgen version %v\n", Version)
		},
	}
}
