package chart

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MetricSet is an insertion-ordered mapping from metric name to numeric value,
// conventionally a percentile in [0, 100]. Order is significant: it fixes the
// angular position of each slice in the rendered chart. JSON unmarshalling
// preserves the key order of the source object.
type MetricSet struct {
	m *orderedmap.OrderedMap[string, float64]
}

// NewMetricSet returns an empty MetricSet.
func NewMetricSet() *MetricSet {
	return &MetricSet{m: orderedmap.New[string, float64]()}
}

// Set stores a metric value, appending the name to the ordering if new.
func (s *MetricSet) Set(name string, value float64) {
	if s.m == nil {
		s.m = orderedmap.New[string, float64]()
	}
	s.m.Set(name, value)
}

// Get returns the value for a metric name.
func (s *MetricSet) Get(name string) (float64, bool) {
	if s == nil || s.m == nil {
		return 0, false
	}
	return s.m.Get(name)
}

// GetOrDefault returns the value for a metric name, or fallback when absent.
func (s *MetricSet) GetOrDefault(name string, fallback float64) float64 {
	if v, ok := s.Get(name); ok {
		return v
	}
	return fallback
}

// Len returns the number of metrics.
func (s *MetricSet) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Names returns the metric names in insertion order.
func (s *MetricSet) Names() []string {
	if s == nil || s.m == nil {
		return nil
	}
	names := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Values returns the metric values in insertion order.
func (s *MetricSet) Values() []float64 {
	if s == nil || s.m == nil {
		return nil
	}
	values := make([]float64, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (s *MetricSet) MarshalJSON() ([]byte, error) {
	if s.m == nil {
		return []byte("{}"), nil
	}
	return s.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving its key order.
func (s *MetricSet) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, float64]()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	s.m = m
	return nil
}
