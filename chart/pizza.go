package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Pizza chart appearance constants.
const (
	pizzaBackground    = "#222222"
	pizzaBlankColor    = "#1a1a1a"
	pizzaBlankAlpha    = 0.4
	pizzaEdgeColor     = "#000000"
	pizzaTextColor     = "#F2F2F2"
	pizzaSubtitleGray  = "#999999"
	pizzaValueBoxColor = "#6495ed" // cornflower blue
	comparisonFallback = "#ff9300"

	// inner hole radius as a fraction of the outer ring
	pizzaInnerRatio = 0.20
)

// defaultPizzaColors is the blue/gold pair used when no colors are supplied.
var defaultPizzaColors = [2]string{"#1a78cf", "#ff9300"}

// PizzaOptions configures a pizza chart render.
type PizzaOptions struct {
	// PlayerName is the main player the chart describes.
	PlayerName string

	// Metrics maps metric name to percentile value. Must be non-empty; its
	// insertion order fixes the angular slice order.
	Metrics *MetricSet

	// ComparisonPlayer, when set, overlays ComparisonMetrics in the comparison
	// color. Metrics absent from ComparisonMetrics default to 0.
	ComparisonPlayer  string
	ComparisonMetrics *MetricSet

	// Colors is an optional [primary, comparison] hex color pair. When only
	// one color is given the comparison slot falls back to "#ff9300".
	Colors []string

	// OutputPath overrides the default deterministic path. BaseDir is the
	// directory the default path is resolved under ("" means "plots").
	OutputPath string
	BaseDir    string

	// Title overrides the generated chart title.
	Title string
}

// PizzaResult describes a rendered pizza chart. Metrics, Values and
// ComparisonValues share the same insertion order as the input.
type PizzaResult struct {
	Path             string
	PlayerName       string
	ComparisonPlayer string
	Metrics          []string
	Values           []float64
	ComparisonValues []float64
}

// RenderPizza renders a segmented circular percentile chart to a PNG file and
// returns a result describing it. Values are taken as given: out-of-range
// values are carried through to the result unmodified and only the drawn
// radius is capped at the outer ring.
func RenderPizza(opts PizzaOptions) (*PizzaResult, error) {
	slices, err := buildPizzaLayout(opts.Metrics, opts.ComparisonMetrics)
	if err != nil {
		return nil, err
	}
	hasComparison := opts.ComparisonMetrics != nil

	primary, comparison := resolvePizzaColors(opts.Colors)
	title := opts.Title
	if title == "" {
		if opts.ComparisonPlayer != "" {
			title = fmt.Sprintf("%s vs %s", opts.PlayerName, opts.ComparisonPlayer)
		} else {
			title = fmt.Sprintf("%s - Season Performance", opts.PlayerName)
		}
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultPizzaPath(opts.BaseDir, opts.PlayerName)
	}

	if err := rasterizePizza(outputPath, title, opts, slices, hasComparison, primary, comparison); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	result := &PizzaResult{
		Path:             outputPath,
		PlayerName:       opts.PlayerName,
		ComparisonPlayer: opts.ComparisonPlayer,
		Metrics:          opts.Metrics.Names(),
		Values:           opts.Metrics.Values(),
	}
	if hasComparison {
		result.ComparisonValues = make([]float64, len(slices))
		for i, s := range slices {
			result.ComparisonValues[i] = s.Compare
		}
	}
	return result, nil
}

// resolvePizzaColors applies the default palette and the fixed fallback for a
// missing comparison color.
func resolvePizzaColors(colors []string) (primary, comparison string) {
	switch {
	case len(colors) >= 2:
		return colors[0], colors[1]
	case len(colors) == 1:
		return colors[0], comparisonFallback
	default:
		return defaultPizzaColors[0], defaultPizzaColors[1]
	}
}

func rasterizePizza(outputPath, title string, opts PizzaOptions, slices []pizzaSlice, hasComparison bool, primary, comparison string) error {
	f, err := newFaces()
	if err != nil {
		return err
	}
	defer f.Close()

	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetHexColor(pizzaBackground)
	dc.Clear()

	cx := float64(canvasSize) / 2
	cy := float64(canvasSize)/2 + 40
	outer := 430.0
	inner := outer * pizzaInnerRatio
	radius := func(v float64) float64 {
		return inner + capRadius(v, 100)/100*(outer-inner)
	}

	// Blank background bands so every slice spans its full wedge.
	dc.SetHexColor(withAlpha(pizzaBlankColor, pizzaBlankAlpha))
	for _, s := range slices {
		annularWedge(dc, cx, cy, inner, outer, s.Start, s.End)
	}
	dc.Fill()

	// Filled value wedges.
	for _, s := range slices {
		annularWedge(dc, cx, cy, inner, radius(s.Value), s.Start, s.End)
		dc.SetHexColor(primary)
		dc.FillPreserve()
		dc.SetHexColor(pizzaEdgeColor)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	// Comparison overlay wedges.
	if hasComparison {
		for _, s := range slices {
			annularWedge(dc, cx, cy, inner, radius(s.Compare), s.Start, s.End)
			dc.SetHexColor(withAlpha(comparison, 0.8))
			dc.FillPreserve()
			dc.SetHexColor(pizzaEdgeColor)
			dc.SetLineWidth(2)
			dc.Stroke()
		}
	}

	// Straight separator lines between slices.
	dc.SetHexColor(pizzaEdgeColor)
	dc.SetLineWidth(2)
	for _, s := range slices {
		x0, y0 := polar(cx, cy, inner, s.Start)
		x1, y1 := polar(cx, cy, outer, s.Start)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	// Clean inner hole.
	dc.SetHexColor(pizzaBackground)
	dc.DrawCircle(cx, cy, inner)
	dc.Fill()

	// Metric name labels outside the outer ring.
	dc.SetFontFace(f.label)
	dc.SetHexColor(pizzaTextColor)
	for _, s := range slices {
		x, y := polar(cx, cy, outer+46, s.Mid)
		dc.DrawStringAnchored(s.Name, x, y, 0.5, 0.5)
	}

	// Value labels in rounded boxes at each filled radius.
	for _, s := range slices {
		drawValueBox(dc, f, cx, cy, radius(s.Value), s.Mid, formatValue(s.Value), pizzaValueBoxColor)
	}
	if hasComparison {
		for _, s := range slices {
			drawValueBox(dc, f, cx, cy, radius(s.Compare), s.Mid, formatValue(s.Compare), comparison)
		}
	}

	// Title and subtitle.
	dc.SetFontFace(f.title)
	dc.SetHexColor(pizzaTextColor)
	dc.DrawStringAnchored(title, cx, 56, 0.5, 0.5)
	dc.SetFontFace(f.subtitle)
	if opts.ComparisonPlayer != "" {
		dc.DrawStringAnchored(
			fmt.Sprintf("%s (blue) vs %s (orange)", opts.PlayerName, opts.ComparisonPlayer),
			cx, 108, 0.5, 0.5)
	} else {
		dc.SetHexColor(pizzaSubtitleGray)
		dc.DrawStringAnchored("Percentile rankings vs league average", cx, 108, 0.5, 0.5)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	return dc.SavePNG(outputPath)
}

// drawValueBox draws a value label centered at the given polar position inside
// a rounded rectangle.
func drawValueBox(dc *gg.Context, f *faces, cx, cy, r, angle float64, text, boxColor string) {
	x, y := polar(cx, cy, r, angle)
	dc.SetFontFace(f.value)
	w, h := dc.MeasureString(text)
	const pad = 7
	dc.SetHexColor(boxColor)
	dc.DrawRoundedRectangle(x-w/2-pad, y-h/2-pad, w+2*pad, h+2*pad, 8)
	dc.FillPreserve()
	dc.SetHexColor(pizzaEdgeColor)
	dc.SetLineWidth(1.5)
	dc.Stroke()
	dc.SetHexColor(pizzaTextColor)
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}
