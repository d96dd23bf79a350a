package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler/internal/cli"
	"github.com/aretw0/scrambler/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scrambler",
	Short: "Scrambler encodes and decodes messages with reversible command lines",
	Long: `Scrambler applies lines of shift, rotate, duplicate and trade commands to messages.
Every command line can be undone: decode replays its inverse in reverse order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file (ignored when the default is missing)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// settings collects the persistent flags. overrides maps flag names to
// config keys; only flags the user set are forwarded.
func settings(cmd *cobra.Command, overrides map[string]string) cli.Settings {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	s := cli.Settings{
		ConfigPath:     configPath,
		ConfigRequired: cmd.Flags().Changed("config"),
		Debug:          debug,
		Overrides:      map[string]any{},
	}
	for flag, key := range overrides {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		if v, err := cmd.Flags().GetString(flag); err == nil {
			s.Overrides[key] = v
		}
	}
	return s
}
