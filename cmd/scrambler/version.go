package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scrambler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scrambler version %s\n", strings.TrimSpace(scrambler.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
