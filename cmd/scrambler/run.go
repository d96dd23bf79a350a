package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/scrambler/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Prompt for files and direction, then transform every line",
	Long: `Asks for a message file, an operations file, an output file and whether to
encrypt or decrypt. Results are echoed to stdout and written to the output file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.RunSession(sigCtx, cli.SessionOptions{
			Settings: settings(cmd, nil),
			In:       os.Stdin,
			Out:      os.Stdout,
			Terminal: term.IsTerminal(int(os.Stdout.Fd())),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default if no command is provided
	rootCmd.RunE = runCmd.RunE
}
