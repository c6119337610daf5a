package chart

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Canvas size shared by both chart types. Fonts and radii below are sized for
// this canvas.
const canvasSize = 1200

var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// faces holds the font faces used on one rendering context. Faces hold
// rasterization buffers, so each render call builds and releases its own set
// rather than sharing them between calls.
type faces struct {
	title    font.Face
	subtitle font.Face
	label    font.Face
	value    font.Face
	tick     font.Face
	closers  []font.Face
}

func newFaces() (*faces, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	f := &faces{}
	specs := []struct {
		font *opentype.Font
		size float64
		dst  *font.Face
	}{
		{boldFont, 44, &f.title},
		{regularFont, 27, &f.subtitle},
		{regularFont, 26, &f.label},
		{regularFont, 23, &f.value},
		{regularFont, 20, &f.tick},
	}
	for _, spec := range specs {
		face, err := newFace(spec.font, spec.size)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("build font face: %w", err)
		}
		*spec.dst = face
		f.closers = append(f.closers, face)
	}
	return f, nil
}

// Close releases the glyph caches held by the faces. Safe to call multiple
// times.
func (f *faces) Close() {
	for _, face := range f.closers {
		face.Close()
	}
	f.closers = nil
}

// polar converts an angle measured clockwise from 12 o'clock and a radius
// into canvas coordinates around the given center.
func polar(cx, cy, radius, angle float64) (float64, float64) {
	screen := angle - math.Pi/2
	return cx + radius*math.Cos(screen), cy + radius*math.Sin(screen)
}

// annularWedge traces the wedge between two radii across [start, end] on the
// given context. The caller fills or strokes the resulting path.
func annularWedge(dc *gg.Context, cx, cy, inner, outer, start, end float64) {
	screenStart := start - math.Pi/2
	screenEnd := end - math.Pi/2
	x, y := polar(cx, cy, inner, start)
	dc.MoveTo(x, y)
	x, y = polar(cx, cy, outer, start)
	dc.LineTo(x, y)
	dc.DrawArc(cx, cy, outer, screenStart, screenEnd)
	x, y = polar(cx, cy, inner, end)
	dc.LineTo(x, y)
	dc.DrawArc(cx, cy, inner, screenEnd, screenStart)
	dc.ClosePath()
}

// formatValue renders a metric value without trailing zeros (85 not 85.0).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// withAlpha appends an alpha byte to a #RRGGBB hex color.
func withAlpha(hex string, alpha float64) string {
	a := int(math.Round(alpha * 255))
	if a < 0 {
		a = 0
	} else if a > 255 {
		a = 255
	}
	return fmt.Sprintf("%s%02x", hex, a)
}

// capRadius limits a drawn radius to the outer ring. Layout values themselves
// are never clamped; this only keeps the rasterized geometry on canvas.
func capRadius(r, max float64) float64 {
	if r > max {
		return max
	}
	if r < 0 {
		return 0
	}
	return r
}
