package toolkit

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/deepfield-ai/pitchviz"
	"github.com/deepfield-ai/pitchviz/chart"
	"github.com/deepfield-ai/pitchviz/schema"
	"github.com/deepfield-ai/pitchviz/slogger"
)

var _ pitchviz.TypedTool[*RadarChartInput] = &RadarChartTool{}

// RadarChartInput represents the input parameters for radar chart generation.
type RadarChartInput struct {
	PlayerName string           `json:"player_name"`
	Metrics    *chart.MetricSet `json:"metrics"`
	Color      string           `json:"color,omitempty"`
	OutputDir  string           `json:"output_dir,omitempty"`
}

// RadarChartToolOptions are the options used to configure a RadarChartTool.
type RadarChartToolOptions struct {
	FileSystem FileSystem
	BaseDir    string
	Logger     slogger.Logger
}

// NewRadarChartTool creates a new RadarChartTool with the given options.
func NewRadarChartTool(opts RadarChartToolOptions) *pitchviz.TypedToolAdapter[*RadarChartInput] {
	if opts.FileSystem == nil {
		opts.FileSystem = &RealFileSystem{}
	}
	if opts.BaseDir == "" {
		opts.BaseDir = chart.DefaultBaseDir
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return pitchviz.ToolAdapter(&RadarChartTool{
		fs:      opts.FileSystem,
		baseDir: opts.BaseDir,
		logger:  opts.Logger,
		render:  chart.RenderRadar,
	})
}

// RadarChartTool generates a simple radar/spider chart for a single player.
type RadarChartTool struct {
	fs      FileSystem
	baseDir string
	logger  slogger.Logger
	render  func(chart.RadarOptions) (string, error)
}

func (t *RadarChartTool) Name() string {
	return "plot_radar_chart"
}

func (t *RadarChartTool) Description() string {
	return "Generate a radar (spider) chart for a single player. Provide a mapping of metric name to value on a 0-100 scale; the key order fixes the category order around the chart. Saves a PNG and returns it base64-encoded."
}

func (t *RadarChartTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"player_name", "metrics"},
		Properties: map[string]*schema.Property{
			"player_name": {
				Type:        "string",
				Description: "Name of the player.",
			},
			"metrics": {
				Type:                 "object",
				Description:          "Mapping of metric name to value (0-100). Key order determines category order.",
				AdditionalProperties: &schema.Property{Type: "number"},
			},
			"color": {
				Type:        "string",
				Description: "Polygon fill color as a hex string. Defaults to \"#1a78cf\".",
			},
			"output_dir": {
				Type:        "string",
				Description: "Directory to save the chart in. Defaults to the configured plots directory.",
			},
		},
	}
}

func (t *RadarChartTool) Annotations() *pitchviz.ToolAnnotations {
	return &pitchviz.ToolAnnotations{
		Title:          "Radar Chart",
		ReadOnlyHint:   false,
		IdempotentHint: true,
	}
}

func (t *RadarChartTool) Call(ctx context.Context, input *RadarChartInput) (*pitchviz.ToolResult, error) {
	baseDir := t.baseDir
	if input.OutputDir != "" {
		baseDir = input.OutputDir
	}
	outputPath := chart.DefaultRadarPath(baseDir, input.PlayerName)

	path, err := t.render(chart.RadarOptions{
		PlayerName: input.PlayerName,
		Metrics:    input.Metrics,
		Color:      input.Color,
		OutputPath: outputPath,
	})
	if err != nil {
		return t.errorResult(input.PlayerName, err), nil
	}

	imgData, err := t.fs.ReadFile(path)
	if err != nil {
		return t.errorResult(input.PlayerName, err), nil
	}
	b64Data := base64.StdEncoding.EncodeToString(imgData)
	alt := fmt.Sprintf("Radar chart: %s", input.PlayerName)

	lines := []string{
		fmt.Sprintf("Created radar chart for %s", input.PlayerName),
		fmt.Sprintf("Metrics analyzed: %d", input.Metrics.Len()),
		fmt.Sprintf("Chart saved to: %s", path),
	}

	metadata := map[string]any{
		"viz_type":        "radar_chart",
		"player_name":     input.PlayerName,
		"metrics":         input.Metrics.Names(),
		"image_path":      path,
		"image_data":      b64Data,
		"image_mime_type": "image/png",
		"images": []map[string]any{{
			"data":      b64Data,
			"mime_type": "image/png",
			"alt":       alt,
			"path":      path,
		}},
	}

	t.logger.Info("radar chart rendered",
		"player", input.PlayerName,
		"metrics", input.Metrics.Len(),
		"path", path)

	return &pitchviz.ToolResult{
		Content: []*pitchviz.ToolResultContent{
			{
				Type: pitchviz.ToolResultContentTypeText,
				Text: joinLines(lines),
			},
			{
				Type:     pitchviz.ToolResultContentTypeImage,
				Data:     b64Data,
				MimeType: "image/png",
				Alt:      alt,
			},
		},
		Metadata: metadata,
	}, nil
}

func (t *RadarChartTool) errorResult(playerName string, err error) *pitchviz.ToolResult {
	msg := fmt.Sprintf("Failed to create radar chart: %v", err)
	t.logger.Error("radar chart failed", "player", playerName, "error", err)
	return pitchviz.NewToolResultErrorWithMetadata(msg, map[string]any{
		"player_name": playerName,
		"error":       err.Error(),
	})
}
