package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/scrambler/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts scrambler as an MCP server over Standard Input/Output.
AI agents can call the encode, decode and reverse_operations tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ServeMCP(settings(cmd, nil))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
