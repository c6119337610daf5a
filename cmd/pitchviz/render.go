package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepfield-ai/pitchviz/chart"
)

var (
	renderPlayer     string
	renderMetrics    string
	renderOut        string
	renderOutDir     string
	pizzaCompare     string
	pizzaCmpMetrics  string
	pizzaColors      []string
	pizzaPaletteName string
	radarColor       string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart to a PNG file",
}

var renderPizzaCmd = &cobra.Command{
	Use:   "pizza",
	Short: "Render a pizza chart of percentile metrics",
	Long: `Render a pizza chart of player percentile metrics. Metrics are passed
as a JSON object whose key order fixes the slice order, e.g.
'{"Goals": 85, "Assists": 92}'.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		metrics, err := parseMetrics(renderMetrics)
		if err != nil {
			return err
		}

		opts := chart.PizzaOptions{
			PlayerName:       renderPlayer,
			Metrics:          metrics,
			ComparisonPlayer: pizzaCompare,
			Colors:           pizzaColors,
			OutputPath:       renderOut,
			BaseDir:          renderOutDir,
		}
		if pizzaCmpMetrics != "" {
			cmp, err := parseMetrics(pizzaCmpMetrics)
			if err != nil {
				return fmt.Errorf("invalid --compare-metrics: %w", err)
			}
			opts.ComparisonMetrics = cmp
		}
		if len(pizzaColors) == 0 && pizzaPaletteName != "" {
			styles, err := loadStyles()
			if err != nil {
				return err
			}
			palette := styles.PizzaPalette(pizzaPaletteName)
			opts.Colors = palette[:]
		}

		logger := buildLogger()
		logger.Debug("rendering pizza chart", "player", renderPlayer, "metrics", metrics.Len())

		result, err := chart.RenderPizza(opts)
		if err != nil {
			return err
		}

		color.Green("Created pizza chart: %s", result.Path)
		return nil
	},
}

var renderRadarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Render a radar chart of player metrics",
	RunE: func(_ *cobra.Command, _ []string) error {
		metrics, err := parseMetrics(renderMetrics)
		if err != nil {
			return err
		}

		logger := buildLogger()
		logger.Debug("rendering radar chart", "player", renderPlayer, "metrics", metrics.Len())

		path, err := chart.RenderRadar(chart.RadarOptions{
			PlayerName: renderPlayer,
			Metrics:    metrics,
			Color:      radarColor,
			OutputPath: renderOut,
			BaseDir:    renderOutDir,
		})
		if err != nil {
			return err
		}

		color.Green("Created radar chart: %s", path)
		return nil
	},
}

// parseMetrics decodes a JSON object of metric values, keeping key order.
func parseMetrics(raw string) (*chart.MetricSet, error) {
	if raw == "" {
		return nil, fmt.Errorf("--metrics is required")
	}
	metrics := chart.NewMetricSet()
	if err := json.Unmarshal([]byte(raw), metrics); err != nil {
		return nil, fmt.Errorf("invalid --metrics: %w", err)
	}
	return metrics, nil
}

func init() {
	for _, c := range []*cobra.Command{renderPizzaCmd, renderRadarCmd} {
		c.Flags().StringVar(&renderPlayer, "player", "", "player name")
		c.Flags().StringVar(&renderMetrics, "metrics", "", "metrics as a JSON object, e.g. '{\"Goals\": 85}'")
		c.Flags().StringVar(&renderOut, "out", "", "explicit output file path")
		c.Flags().StringVar(&renderOutDir, "out-dir", "", "output directory (defaults to plots)")
		_ = c.MarkFlagRequired("player")
		_ = c.MarkFlagRequired("metrics")
	}

	renderPizzaCmd.Flags().StringVar(&pizzaCompare, "compare-player", "", "comparison player name")
	renderPizzaCmd.Flags().StringVar(&pizzaCmpMetrics, "compare-metrics", "", "comparison metrics as a JSON object")
	renderPizzaCmd.Flags().StringSliceVar(&pizzaColors, "colors", nil, "two hex colors: player,comparison")
	renderPizzaCmd.Flags().StringVar(&pizzaPaletteName, "palette", "", "named color palette from the style tables")
	renderRadarCmd.Flags().StringVar(&radarColor, "color", "", "polygon color as a hex string")

	renderCmd.AddCommand(renderPizzaCmd)
	renderCmd.AddCommand(renderRadarCmd)
	rootCmd.AddCommand(renderCmd)
}
