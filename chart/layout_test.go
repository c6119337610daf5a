package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPizzaLayoutAngularOrder(t *testing.T) {
	ms := NewMetricSet()
	ms.Set("Goals", 85)
	ms.Set("Assists", 78)
	ms.Set("Dribbles", 88)
	ms.Set("Shots", 75)

	slices, err := buildPizzaLayout(ms, nil)
	require.NoError(t, err)
	require.Len(t, slices, 4)

	step := 2 * math.Pi / 4
	for i, s := range slices {
		require.Equal(t, ms.Names()[i], s.Name)
		require.InDelta(t, float64(i)*step, s.Start, 1e-12)
		require.InDelta(t, float64(i+1)*step, s.End, 1e-12)
		require.InDelta(t, (s.Start+s.End)/2, s.Mid, 1e-12)
	}
	// Wedges tile the full circle
	require.InDelta(t, 2*math.Pi, slices[3].End, 1e-12)
}

func TestPizzaLayoutComparisonZeroFill(t *testing.T) {
	ms := NewMetricSet()
	ms.Set("Goals", 85)
	ms.Set("Assists", 78)

	comparison := NewMetricSet()
	comparison.Set("Goals", 70)

	slices, err := buildPizzaLayout(ms, comparison)
	require.NoError(t, err)
	require.Equal(t, 70.0, slices[0].Compare)
	require.Equal(t, 0.0, slices[1].Compare)
}

func TestPizzaLayoutEmpty(t *testing.T) {
	_, err := buildPizzaLayout(NewMetricSet(), nil)
	require.ErrorIs(t, err, ErrNoMetrics)
}

func TestRadarLayoutClosedPolygon(t *testing.T) {
	ms := NewMetricSet()
	ms.Set("Goals", 85)
	ms.Set("Assists", 78)
	ms.Set("Dribbles", 88)

	layout, err := buildRadarLayout(ms)
	require.NoError(t, err)

	// N category labels, N+1 plotted points
	require.Len(t, layout.Names, 3)
	require.Len(t, layout.Angles, 4)
	require.Len(t, layout.Values, 4)

	for i := 0; i < 3; i++ {
		require.InDelta(t, 2*math.Pi*float64(i)/3, layout.Angles[i], 1e-12)
	}
	require.Equal(t, layout.Angles[0], layout.Angles[3])
	require.Equal(t, layout.Values[0], layout.Values[3])
	require.Equal(t, []float64{85, 78, 88, 85}, layout.Values)
}

func TestRadarLayoutSinglePoint(t *testing.T) {
	ms := NewMetricSet()
	ms.Set("Goals", 85)

	layout, err := buildRadarLayout(ms)
	require.NoError(t, err)
	require.Len(t, layout.Angles, 2)
	require.Equal(t, []float64{0, 0}, layout.Angles)
	require.Equal(t, []float64{85, 85}, layout.Values)
}

func TestRadarLayoutEmpty(t *testing.T) {
	_, err := buildRadarLayout(NewMetricSet())
	require.ErrorIs(t, err, ErrNoMetrics)
}

func TestRadarLayoutInsertionOrderControlsAngles(t *testing.T) {
	first := NewMetricSet()
	first.Set("A", 1)
	first.Set("B", 2)

	second := NewMetricSet()
	second.Set("B", 2)
	second.Set("A", 1)

	l1, err := buildRadarLayout(first)
	require.NoError(t, err)
	l2, err := buildRadarLayout(second)
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, l1.Names)
	require.Equal(t, []string{"B", "A"}, l2.Names)
	require.Equal(t, l1.Angles, l2.Angles)
}
