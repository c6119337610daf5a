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

var _ pitchviz.TypedTool[*PizzaChartInput] = &PizzaChartTool{}

// PizzaChartInput represents the input parameters for pizza chart generation.
type PizzaChartInput struct {
	PlayerName        string           `json:"player_name"`
	Metrics           *chart.MetricSet `json:"metrics"`
	ComparisonPlayer  string           `json:"comparison_player,omitempty"`
	ComparisonMetrics *chart.MetricSet `json:"comparison_metrics,omitempty"`
	Colors            []string         `json:"colors,omitempty"`
	OutputDir         string           `json:"output_dir,omitempty"`
}

// PizzaChartToolOptions are the options used to configure a PizzaChartTool.
type PizzaChartToolOptions struct {
	FileSystem FileSystem
	BaseDir    string // default output directory (defaults to "plots")
	Logger     slogger.Logger
}

// NewPizzaChartTool creates a new PizzaChartTool with the given options.
func NewPizzaChartTool(opts PizzaChartToolOptions) *pitchviz.TypedToolAdapter[*PizzaChartInput] {
	if opts.FileSystem == nil {
		opts.FileSystem = &RealFileSystem{}
	}
	if opts.BaseDir == "" {
		opts.BaseDir = chart.DefaultBaseDir
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return pitchviz.ToolAdapter(&PizzaChartTool{
		fs:      opts.FileSystem,
		baseDir: opts.BaseDir,
		logger:  opts.Logger,
		render:  chart.RenderPizza,
	})
}

// PizzaChartTool generates a colorful pizza chart comparing player performance
// percentiles, optionally overlaying a second player.
type PizzaChartTool struct {
	fs      FileSystem
	baseDir string
	logger  slogger.Logger
	render  func(chart.PizzaOptions) (*chart.PizzaResult, error)
}

func (t *PizzaChartTool) Name() string {
	return "plot_pizza_chart"
}

func (t *PizzaChartTool) Description() string {
	return "Generate a colorful pizza chart for player performance comparison. Provide a mapping of metric name to percentile value (0-100); the key order fixes the slice order. Optionally supply a comparison player with their own metrics to overlay both on the same chart. Saves a PNG and returns it base64-encoded."
}

func (t *PizzaChartTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"player_name", "metrics"},
		Properties: map[string]*schema.Property{
			"player_name": {
				Type:        "string",
				Description: "Name of the main player.",
			},
			"metrics": {
				Type:                 "object",
				Description:          "Mapping of metric name to percentile value (0-100), e.g. {\"Goals\": 85, \"Assists\": 78}. Key order determines slice order.",
				AdditionalProperties: &schema.Property{Type: "number"},
			},
			"comparison_player": {
				Type:        "string",
				Description: "Name of a player to compare against.",
			},
			"comparison_metrics": {
				Type:                 "object",
				Description:          "Metrics for the comparison player. Metrics missing here default to 0.",
				AdditionalProperties: &schema.Property{Type: "number"},
			},
			"colors": {
				Type:        "array",
				Description: "Two hex colors: [player_color, comparison_color].",
				Items:       &schema.Property{Type: "string"},
				MaxItems:    schema.IntPtr(2),
			},
			"output_dir": {
				Type:        "string",
				Description: "Directory to save the chart in. Defaults to the configured plots directory.",
			},
		},
	}
}

func (t *PizzaChartTool) Annotations() *pitchviz.ToolAnnotations {
	return &pitchviz.ToolAnnotations{
		Title:          "Pizza Chart",
		ReadOnlyHint:   false,
		IdempotentHint: true,
	}
}

func (t *PizzaChartTool) Call(ctx context.Context, input *PizzaChartInput) (*pitchviz.ToolResult, error) {
	baseDir := t.baseDir
	if input.OutputDir != "" {
		baseDir = input.OutputDir
	}
	outputPath := chart.DefaultPizzaPath(baseDir, input.PlayerName)

	result, err := t.render(chart.PizzaOptions{
		PlayerName:        input.PlayerName,
		Metrics:           input.Metrics,
		ComparisonPlayer:  input.ComparisonPlayer,
		ComparisonMetrics: input.ComparisonMetrics,
		Colors:            input.Colors,
		OutputPath:        outputPath,
	})
	if err != nil {
		return t.errorResult(input.PlayerName, err), nil
	}

	imgData, err := t.fs.ReadFile(result.Path)
	if err != nil {
		return t.errorResult(input.PlayerName, err), nil
	}
	b64Data := base64.StdEncoding.EncodeToString(imgData)

	alt := fmt.Sprintf("Pizza chart: %s", input.PlayerName)
	if input.ComparisonPlayer != "" {
		alt += fmt.Sprintf(" vs %s", input.ComparisonPlayer)
	}

	lines := []string{
		fmt.Sprintf("Created pizza chart for %s", input.PlayerName),
	}
	if input.ComparisonPlayer != "" {
		lines = append(lines, fmt.Sprintf("Comparison: %s vs %s", input.PlayerName, input.ComparisonPlayer))
	}
	lines = append(lines,
		fmt.Sprintf("Metrics analyzed: %d", input.Metrics.Len()),
		fmt.Sprintf("Chart saved to: %s", result.Path),
	)

	metadata := map[string]any{
		"viz_type":        "pizza_chart",
		"player_name":     input.PlayerName,
		"metrics":         result.Metrics,
		"image_path":      result.Path,
		"image_data":      b64Data,
		"image_mime_type": "image/png",
		// Consumers read a single-element image list alongside the flat
		// image_* keys; both shapes are kept for compatibility.
		"images": []map[string]any{{
			"data":      b64Data,
			"mime_type": "image/png",
			"alt":       fmt.Sprintf("Pizza chart: %s", input.PlayerName),
			"path":      result.Path,
		}},
	}
	if input.ComparisonPlayer != "" {
		metadata["comparison_player"] = input.ComparisonPlayer
	}

	t.logger.Info("pizza chart rendered",
		"player", input.PlayerName,
		"metrics", input.Metrics.Len(),
		"path", result.Path)

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

// errorResult converts any failure into the uniform error-shaped result. This
// is the sole recovery boundary: renderer and IO failures never escape a tool
// call as Go errors.
func (t *PizzaChartTool) errorResult(playerName string, err error) *pitchviz.ToolResult {
	msg := fmt.Sprintf("Failed to create pizza chart: %v", err)
	t.logger.Error("pizza chart failed", "player", playerName, "error", err)
	return pitchviz.NewToolResultErrorWithMetadata(msg, map[string]any{
		"player_name": playerName,
		"error":       err.Error(),
	})
}

func joinLines(lines []string) string {
	text := ""
	for i, line := range lines {
		if i > 0 {
			text += "\n"
		}
		text += line
	}
	return text
}
