package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <operations file>",
	Short: "Check an operations file for syntax errors",
	Long: `Parses every line of an operations file and reports all malformed commands.
With --messages each line is also encoded against its message as a dry run,
which catches out-of-range indices and misaligned files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		messages, _ := cmd.Flags().GetString("messages")
		return cli.Validate(cmd.Context(), cli.ValidateOptions{
			Settings:     settings(cmd, nil),
			CommandsPath: args[0],
			MessagesPath: messages,
			Out:          cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("messages", "m", "", "Message file to dry-run the operations against")
}
