package toolkit

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepfield-ai/pitchviz"
	"github.com/deepfield-ai/pitchviz/chart"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(pairs ...any) *chart.MetricSet {
	ms := chart.NewMetricSet()
	for i := 0; i < len(pairs); i += 2 {
		ms.Set(pairs[i].(string), pairs[i+1].(float64))
	}
	return ms
}

func TestPizzaChartTool_Metadata(t *testing.T) {
	tool := &PizzaChartTool{}
	require.Equal(t, "plot_pizza_chart", tool.Name())
	require.Contains(t, tool.Description(), "pizza chart")

	annotations := tool.Annotations()
	require.NotNil(t, annotations)
	require.Equal(t, "Pizza Chart", annotations.Title)
	require.True(t, annotations.IdempotentHint)
}

func TestPizzaChartTool_Schema(t *testing.T) {
	tool := &PizzaChartTool{}
	s := tool.Schema()
	require.NotNil(t, s)
	require.Equal(t, "object", s.Type)
	require.Equal(t, []string{"player_name", "metrics"}, s.Required)

	for _, prop := range []string{"player_name", "metrics", "comparison_player", "comparison_metrics", "colors", "output_dir"} {
		require.Contains(t, s.Properties, prop)
	}
	require.Equal(t, "number", s.Properties["metrics"].AdditionalProperties.Type)
	require.Equal(t, 2, *s.Properties["colors"].MaxItems)
}

func TestPizzaChartTool_Call(t *testing.T) {
	dir := t.TempDir()
	tool := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: dir})

	result, err := tool.Call(context.Background(), &PizzaChartInput{
		PlayerName: "Saka",
		Metrics:    newTestMetrics("Goals", 85.0, "Assists", 78.0, "Dribbles", 88.0),
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Contains(t, result.TextSummary(), "Created pizza chart for Saka")
	require.Contains(t, result.TextSummary(), "Metrics analyzed: 3")

	img := result.ImageContent()
	require.NotNil(t, img)
	require.Equal(t, "image/png", img.MimeType)
	require.Equal(t, "Pizza chart: Saka", img.Alt)

	require.Equal(t, "pizza_chart", result.Metadata["viz_type"])
	require.Equal(t, "Saka", result.Metadata["player_name"])
	require.Equal(t, []string{"Goals", "Assists", "Dribbles"}, result.Metadata["metrics"])
	require.Equal(t, "image/png", result.Metadata["image_mime_type"])
	require.NotContains(t, result.Metadata, "comparison_player")

	// The base64 payload decodes to exactly the bytes at image_path
	imagePath := result.Metadata["image_path"].(string)
	require.Equal(t, filepath.Join(dir, "pizza_Saka.png"), imagePath)
	fileBytes, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(result.Metadata["image_data"].(string))
	require.NoError(t, err)
	require.Equal(t, fileBytes, decoded)

	// The redundant single-element image list mirrors the flat keys
	images := result.Metadata["images"].([]map[string]any)
	require.Len(t, images, 1)
	require.Equal(t, imagePath, images[0]["path"])
	require.Equal(t, result.Metadata["image_data"], images[0]["data"])
	require.Equal(t, "image/png", images[0]["mime_type"])
	require.Equal(t, "Pizza chart: Saka", images[0]["alt"])
}

func TestPizzaChartTool_CallComparison(t *testing.T) {
	dir := t.TempDir()
	tool := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: dir})

	// Empty comparison metrics: every comparison value defaults to 0 and the
	// call still succeeds.
	result, err := tool.Call(context.Background(), &PizzaChartInput{
		PlayerName:        "Saka",
		Metrics:           newTestMetrics("Goals", 85.0),
		ComparisonPlayer:  "Odegaard",
		ComparisonMetrics: chart.NewMetricSet(),
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, result.TextSummary(), "Saka vs Odegaard")
	require.Equal(t, "Odegaard", result.Metadata["comparison_player"])

	img := result.ImageContent()
	require.NotNil(t, img)
	require.Equal(t, "Pizza chart: Saka vs Odegaard", img.Alt)
}

func TestPizzaChartTool_CallEmptyMetrics(t *testing.T) {
	tool := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: t.TempDir()})

	result, err := tool.Call(context.Background(), &PizzaChartInput{
		PlayerName: "Saka",
		Metrics:    chart.NewMetricSet(),
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Nil(t, result.ImageContent())
	require.Contains(t, result.TextSummary(), "Failed to create pizza chart:")
	require.Equal(t, "Saka", result.Metadata["player_name"])
	require.NotEmpty(t, result.Metadata["error"])
}

func TestPizzaChartTool_RenderFailure(t *testing.T) {
	adapter := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: t.TempDir()})
	tool := adapter.Unwrap().(*PizzaChartTool)
	tool.render = func(chart.PizzaOptions) (*chart.PizzaResult, error) {
		return nil, errors.New("backend exploded")
	}

	result, err := adapter.Call(context.Background(), &PizzaChartInput{
		PlayerName: "Saka",
		Metrics:    newTestMetrics("Goals", 85.0),
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Nil(t, result.ImageContent())
	require.Equal(t, "Failed to create pizza chart: backend exploded", result.TextSummary())
	require.Equal(t, "backend exploded", result.Metadata["error"])
}

func TestPizzaChartTool_ReadBackFailure(t *testing.T) {
	tool := NewPizzaChartTool(PizzaChartToolOptions{
		BaseDir:    t.TempDir(),
		FileSystem: &MockFileSystem{ReadErr: errors.New("disk gone")},
	})

	result, err := tool.Call(context.Background(), &PizzaChartInput{
		PlayerName: "Saka",
		Metrics:    newTestMetrics("Goals", 85.0),
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, result.TextSummary(), "Failed to create pizza chart: disk gone")
}

func TestPizzaChartTool_JSONInputPreservesMetricOrder(t *testing.T) {
	dir := t.TempDir()
	adapter := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: dir})

	input := json.RawMessage(`{
		"player_name": "Saka",
		"metrics": {"Shots": 75, "Goals": 85, "Assists": 78}
	}`)
	result, err := adapter.Call(context.Background(), input)
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, []string{"Shots", "Goals", "Assists"}, result.Metadata["metrics"])
}

func TestPizzaChartTool_InvalidJSONInput(t *testing.T) {
	adapter := NewPizzaChartTool(PizzaChartToolOptions{BaseDir: t.TempDir()})

	result, err := adapter.Call(context.Background(), json.RawMessage(`{"metrics": "nope"}`))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, result.TextSummary(), "invalid json for tool plot_pizza_chart")
}

func TestPizzaChartTool_ImplementsTool(t *testing.T) {
	var _ pitchviz.Tool = NewPizzaChartTool(PizzaChartToolOptions{})
}
