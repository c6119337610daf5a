package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

const (
	radarBackground   = "#ffffff"
	radarGridColor    = "#b0b0b0"
	radarTickColor    = "#808080"
	radarLabelColor   = "#000000"
	radarDefaultColor = "#1a78cf"
	radarFillAlpha    = 0.25
)

// radarTicks are the fixed radial axis levels.
var radarTicks = []float64{20, 40, 60, 80, 100}

// RadarOptions configures a radar chart render.
type RadarOptions struct {
	// PlayerName is the player the chart describes.
	PlayerName string

	// Metrics maps metric name to value on a 0-100 scale. Must be non-empty;
	// its insertion order fixes the angular category order.
	Metrics *MetricSet

	// Color is the polygon fill/outline hex color; defaults to "#1a78cf".
	Color string

	// OutputPath overrides the default deterministic path. BaseDir is the
	// directory the default path is resolved under ("" means "plots").
	OutputPath string
	BaseDir    string

	// Title overrides the generated chart title.
	Title string
}

// RenderRadar renders a closed-polygon radar chart to a PNG file and returns
// the path it was written to. Values outside [0, 100] are drawn capped at the
// outer ring but are otherwise accepted as given.
func RenderRadar(opts RadarOptions) (string, error) {
	layout, err := buildRadarLayout(opts.Metrics)
	if err != nil {
		return "", err
	}

	color := opts.Color
	if color == "" {
		color = radarDefaultColor
	}
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s - Performance Radar", opts.PlayerName)
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultRadarPath(opts.BaseDir, opts.PlayerName)
	}

	if err := rasterizeRadar(outputPath, title, layout, color); err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	return outputPath, nil
}

func rasterizeRadar(outputPath, title string, layout *radarLayout, color string) error {
	f, err := newFaces()
	if err != nil {
		return err
	}
	defer f.Close()

	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetHexColor(radarBackground)
	dc.Clear()

	cx := float64(canvasSize) / 2
	cy := float64(canvasSize)/2 + 40
	outer := 440.0
	radius := func(v float64) float64 {
		return capRadius(v, 100) / 100 * outer
	}

	// Dashed grid: concentric rings at the fixed tick levels plus one spoke
	// per category.
	dc.SetHexColor(withAlpha(radarGridColor, 0.7))
	dc.SetLineWidth(1.5)
	dc.SetDash(8, 8)
	for _, tick := range radarTicks {
		dc.DrawCircle(cx, cy, radius(tick))
		dc.Stroke()
	}
	for i := 0; i < len(layout.Angles)-1; i++ {
		x, y := polar(cx, cy, outer, layout.Angles[i])
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}
	dc.SetDash()

	// Radial tick labels along the 12 o'clock axis.
	dc.SetFontFace(f.tick)
	dc.SetHexColor(radarTickColor)
	for _, tick := range radarTicks {
		dc.DrawStringAnchored(formatValue(tick), cx+10, cy-radius(tick), 0, 0.5)
	}

	// Category labels at each of the original N angles.
	dc.SetFontFace(f.label)
	dc.SetHexColor(radarLabelColor)
	for i, name := range layout.Names {
		x, y := polar(cx, cy, outer+44, layout.Angles[i])
		dc.DrawStringAnchored(name, x, y, 0.5, 0.5)
	}

	// Closed, filled polygon outlined by a line with vertex markers.
	for i := range layout.Angles {
		x, y := polar(cx, cy, radius(layout.Values[i]), layout.Angles[i])
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.SetHexColor(withAlpha(color, radarFillAlpha))
	dc.FillPreserve()
	dc.SetHexColor(color)
	dc.SetLineWidth(4)
	dc.Stroke()
	for i := 0; i < len(layout.Angles)-1; i++ {
		x, y := polar(cx, cy, radius(layout.Values[i]), layout.Angles[i])
		dc.DrawCircle(x, y, 6)
		dc.Fill()
	}

	dc.SetFontFace(f.title)
	dc.SetHexColor(radarLabelColor)
	dc.DrawStringAnchored(title, cx, 64, 0.5, 0.5)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	return dc.SavePNG(outputPath)
}
