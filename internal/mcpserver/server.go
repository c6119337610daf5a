// Package mcpserver exposes the chart tools over the Model Context Protocol.
package mcpserver

import (
	"context"

	"github.com/deepfield-ai/pitchviz/slogger"
	"github.com/deepfield-ai/pitchviz/toolkit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Options configures the MCP server.
type Options struct {
	// BaseDir is the default directory charts are written to.
	BaseDir string

	// Logger receives render logs. Defaults to the package default (no-op).
	Logger slogger.Logger
}

// NewServer initializes and configures the pitchviz MCP server without
// starting it. This is exposed for unit testing.
func NewServer(opts Options) *server.MCPServer {
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}

	s := server.NewMCPServer(
		"Pitchviz Chart Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		pizza: toolkit.NewPizzaChartTool(toolkit.PizzaChartToolOptions{
			BaseDir: opts.BaseDir,
			Logger:  opts.Logger,
		}),
		radar: toolkit.NewRadarChartTool(toolkit.RadarChartToolOptions{
			BaseDir: opts.BaseDir,
			Logger:  opts.Logger,
		}),
	}

	metricItemSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"value": map[string]any{"type": "number"},
		},
		"required": []string{"name", "value"},
	}

	// Metrics are an ordered list of name/value pairs rather than a JSON
	// object: the wire decoding of objects does not preserve key order, and
	// order fixes the angular slice position.
	s.AddTool(mcp.NewTool("plot_pizza_chart",
		mcp.WithDescription("Render a pizza chart of player percentile metrics as a PNG image. Metric order fixes the slice order."),
		mcp.WithString("player_name", mcp.Description("Name of the main player."), mcp.Required()),
		mcp.WithArray("metrics", mcp.Description("Ordered list of {name, value} metric pairs, values on a 0-100 percentile scale."), mcp.Required(), mcp.Items(metricItemSchema)),
		mcp.WithString("comparison_player", mcp.Description("Name of a player to compare against.")),
		mcp.WithArray("comparison_metrics", mcp.Description("Ordered list of {name, value} pairs for the comparison player. Missing metrics default to 0."), mcp.Items(metricItemSchema)),
		mcp.WithArray("colors", mcp.Description("Two hex colors: [player_color, comparison_color]."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("output_dir", mcp.Description("Directory to save the chart in.")),
	), h.handlePlotPizzaChart)

	s.AddTool(mcp.NewTool("plot_radar_chart",
		mcp.WithDescription("Render a radar (spider) chart of player metrics as a PNG image. Metric order fixes the category order."),
		mcp.WithString("player_name", mcp.Description("Name of the player."), mcp.Required()),
		mcp.WithArray("metrics", mcp.Description("Ordered list of {name, value} metric pairs, values on a 0-100 scale."), mcp.Required(), mcp.Items(metricItemSchema)),
		mcp.WithString("color", mcp.Description("Polygon fill color as a hex string.")),
		mcp.WithString("output_dir", mcp.Description("Directory to save the chart in.")),
	), h.handlePlotRadarChart)

	return s
}

// Serve starts the pitchviz MCP server on stdio.
func Serve(_ context.Context, opts Options) error {
	s := NewServer(opts)
	return server.ServeStdio(s)
}
