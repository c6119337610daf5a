package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/deepfield-ai/pitchviz/internal/mcpserver"
)

var mcpBaseDir string

// mcpCmd starts the stdio MCP server. Logs go to stderr so stdout stays
// clean for the protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the pitchviz MCP server",
	Long:  `Launch an MCP server that lets AI agents render pizza and radar charts via standard tools.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcpserver.Serve(context.Background(), mcpserver.Options{
			BaseDir: mcpBaseDir,
			Logger:  buildLogger(),
		})
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpBaseDir, "out-dir", "", "directory charts are written to (defaults to plots)")
	rootCmd.AddCommand(mcpCmd)
}
