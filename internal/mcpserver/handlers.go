package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepfield-ai/pitchviz"
	"github.com/deepfield-ai/pitchviz/chart"
	"github.com/deepfield-ai/pitchviz/toolkit"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	pizza pitchviz.Tool
	radar pitchviz.Tool
}

func (h *toolHandler) handlePlotPizzaChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	metrics, err := parseMetricPairs(args["metrics"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics: %v", err)), nil
	}

	input := toolkit.PizzaChartInput{
		PlayerName:       request.GetString("player_name", ""),
		Metrics:          metrics,
		ComparisonPlayer: request.GetString("comparison_player", ""),
		OutputDir:        request.GetString("output_dir", ""),
		Colors:           stringSlice(args["colors"]),
	}
	if raw, ok := args["comparison_metrics"]; ok && raw != nil {
		cmp, err := parseMetricPairs(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid comparison_metrics: %v", err)), nil
		}
		input.ComparisonMetrics = cmp
	}

	return h.callTool(ctx, h.pizza, input)
}

func (h *toolHandler) handlePlotRadarChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	metrics, err := parseMetricPairs(args["metrics"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics: %v", err)), nil
	}

	input := toolkit.RadarChartInput{
		PlayerName: request.GetString("player_name", ""),
		Metrics:    metrics,
		Color:      request.GetString("color", ""),
		OutputDir:  request.GetString("output_dir", ""),
	}

	return h.callTool(ctx, h.radar, input)
}

// callTool invokes a chart tool and translates its result into an MCP
// tool result. Tool failures become error results, not transport errors.
func (h *toolHandler) callTool(ctx context.Context, tool pitchviz.Tool, input any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid input: %v", err)), nil
	}

	result, err := tool.Call(ctx, raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if result.IsError {
		return mcp.NewToolResultError(result.TextSummary()), nil
	}
	if img := result.ImageContent(); img != nil {
		return mcp.NewToolResultImage(result.TextSummary(), img.Data, img.MimeType), nil
	}
	return mcp.NewToolResultText(result.TextSummary()), nil
}

// parseMetricPairs converts a list of {name, value} objects into a metric
// set, preserving list order.
func parseMetricPairs(raw any) (*chart.MetricSet, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of {name, value} objects")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one metric is required")
	}

	metrics := chart.NewMetricSet()
	for i, item := range items {
		pair, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("metric %d: expected a {name, value} object", i)
		}
		name, ok := pair["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("metric %d: missing name", i)
		}
		value, ok := pair["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("metric %q: missing numeric value", name)
		}
		metrics.Set(name, value)
	}
	return metrics, nil
}

func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
