package chart

import "math"

// pizzaSlice is the computed layout for one angular wedge of a pizza chart.
// Angles are in radians measured clockwise from 12 o'clock.
type pizzaSlice struct {
	Name    string
	Value   float64
	Compare float64
	Start   float64
	End     float64
	Mid     float64
}

// buildPizzaLayout assigns each metric an equal angular wedge in insertion
// order. When comparison is non-nil, metrics it does not define get a
// comparison value of exactly 0.
func buildPizzaLayout(metrics, comparison *MetricSet) ([]pizzaSlice, error) {
	n := metrics.Len()
	if n == 0 {
		return nil, ErrNoMetrics
	}
	names := metrics.Names()
	values := metrics.Values()
	step := 2 * math.Pi / float64(n)

	slices := make([]pizzaSlice, n)
	for i, name := range names {
		s := pizzaSlice{
			Name:  name,
			Value: values[i],
			Start: float64(i) * step,
			End:   float64(i+1) * step,
		}
		s.Mid = s.Start + step/2
		if comparison != nil {
			s.Compare = comparison.GetOrDefault(name, 0)
		}
		slices[i] = s
	}
	return slices, nil
}

// radarLayout is the closed-polygon layout for a radar chart: N category
// names, and N+1 angle/value pairs where the last entry repeats the first so
// the plotted line returns to its starting point.
type radarLayout struct {
	Names  []string
	Angles []float64
	Values []float64
}

// buildRadarLayout computes N equally spaced angles over [0, 2*pi) in
// insertion order and closes the polygon by appending the first angle and
// value to the end of both sequences.
func buildRadarLayout(metrics *MetricSet) (*radarLayout, error) {
	n := metrics.Len()
	if n == 0 {
		return nil, ErrNoMetrics
	}
	names := metrics.Names()
	values := metrics.Values()

	angles := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		angles = append(angles, 2*math.Pi*float64(i)/float64(n))
	}
	angles = append(angles, angles[0])
	closed := make([]float64, 0, n+1)
	closed = append(closed, values...)
	closed = append(closed, values[0])

	return &radarLayout{
		Names:  names,
		Angles: angles,
		Values: closed,
	}, nil
}
