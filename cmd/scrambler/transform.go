package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler/internal/cli"
	"github.com/aretw0/scrambler/pkg/domain"
)

var encodeCmd = newTransformCmd(domain.Encode, "encode", "Apply command lines to messages")

var decodeCmd = newTransformCmd(domain.Decode, "decode", "Undo command lines on encoded messages")

func newTransformCmd(dir domain.Direction, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: `Reads a message file and an operations file with the same number of lines and
transforms each message with the command line at the same position.

With --text and --ops a single message is transformed instead.`,
		Example: "  scrambler " + use + " --messages msgs.txt --commands ops.txt --output out.txt\n" +
			"  scrambler " + use + " --text BACKHAND --ops \"T(4)0,2;S0\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.RunOptions{
				Settings:  settings(cmd, map[string]string{"format": "output"}),
				Direction: dir,
				Stdout:    cmd.OutOrStdout(),
			}
			opts.MessagesPath, _ = cmd.Flags().GetString("messages")
			opts.CommandsPath, _ = cmd.Flags().GetString("commands")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.JSON, _ = cmd.Flags().GetBool("json")
			opts.Text, _ = cmd.Flags().GetString("text")
			opts.Ops, _ = cmd.Flags().GetString("ops")

			sigCtx := cli.NewSignalContext(cmd.Context())
			defer sigCtx.Cancel()
			return cli.Execute(sigCtx, opts)
		},
	}

	cmd.Flags().StringP("messages", "m", "", "Message file, one message per line")
	cmd.Flags().StringP("commands", "c", "", "Operations file, one command line per message")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().Bool("json", false, "Write NDJSON records instead of plain lines")
	cmd.Flags().String("format", "", "Output format: text or json (overrides config)")
	cmd.Flags().String("text", "", "Inline message")
	cmd.Flags().String("ops", "", "Inline command line")
	cmd.MarkFlagsRequiredTogether("messages", "commands")
	cmd.MarkFlagsMutuallyExclusive("text", "messages")
	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
