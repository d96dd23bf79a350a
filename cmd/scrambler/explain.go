package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/scrambler/internal/cli"
	"github.com/aretw0/scrambler/pkg/domain"
)

var explainCmd = &cobra.Command{
	Use:   "explain <command line>",
	Short: "Describe each command of a line, optionally step by step on a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		dirFlag, _ := cmd.Flags().GetString("direction")
		plain, _ := cmd.Flags().GetBool("plain")

		dir, err := domain.ParseDirection(dirFlag)
		if err != nil {
			return err
		}

		return cli.Explain(cmd.Context(), cli.ExplainOptions{
			Settings:  settings(cmd, nil),
			Ops:       args[0],
			Text:      text,
			Direction: dir,
			Render:    !plain && term.IsTerminal(int(os.Stdout.Fd())),
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().String("text", "", "Message to run the line on, showing each intermediate result")
	explainCmd.Flags().StringP("direction", "d", "encode", "encode or decode")
	explainCmd.Flags().Bool("plain", false, "Print raw markdown even on a terminal")
}
