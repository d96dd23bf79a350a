package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler"
)

var reverseCmd = &cobra.Command{
	Use:     "reverse <command line>",
	Short:   "Print the decode form of a command line",
	Example: `  scrambler reverse "S0;R2;T(4)0,2"`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), scrambler.ReverseOperations(strings.Join(args, ";")))
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}
