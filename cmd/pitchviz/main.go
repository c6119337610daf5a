// Command pitchviz renders football player percentile charts and serves
// them to agents over MCP or HTTP.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
