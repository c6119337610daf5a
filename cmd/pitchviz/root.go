package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepfield-ai/pitchviz/chart"
	"github.com/deepfield-ai/pitchviz/slogger"
)

var (
	logLevel    string
	styleConfig string
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:           "pitchviz",
	Short:         "Render football player percentile charts.",
	Long:          `Pitchviz renders pizza and radar charts of player percentile metrics as PNG images, and serves them to AI agents over MCP or HTTP.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&styleConfig, "style-config", "", "path to a YAML style override file")
}

func buildLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

// loadStyles returns the style tables, merged with the override file when
// one was given.
func loadStyles() (*chart.StyleSet, error) {
	if styleConfig == "" {
		return chart.DefaultStyles(), nil
	}
	styles, err := chart.LoadStyleOverrides(styleConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load style config: %w", err)
	}
	return styles, nil
}
