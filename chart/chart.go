// Package chart renders football-player percentile visualizations as PNG
// images. It provides two chart types: the "pizza" chart (segmented circular
// percentile slices, optionally overlaying a comparison player) and a simpler
// radar chart (closed polygon on a polar grid).
//
// Both chart types share two invariants:
//
//   - Angular position is determined solely by the insertion order of metric
//     names in the [MetricSet].
//   - Values are never clamped; callers are responsible for supplying
//     percentiles in [0, 100]. Out-of-range values produce geometrically valid
//     output whose drawn radius is capped at the outer ring.
package chart

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultBaseDir is the directory charts are written to when no base directory
// or explicit output path is supplied.
const DefaultBaseDir = "plots"

// ErrNoMetrics is returned when a chart is requested for an empty MetricSet.
var ErrNoMetrics = errors.New("chart: at least one metric is required")

// sanitizeName makes a player name safe for use in a file name. Spaces become
// underscores and path separators are stripped.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	return strings.ReplaceAll(name, "/", "_")
}

// DefaultPizzaPath returns the deterministic output path for a player's pizza
// chart under the given base directory ("" means DefaultBaseDir).
func DefaultPizzaPath(baseDir, playerName string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, "pizza_"+sanitizeName(playerName)+".png")
}

// DefaultRadarPath returns the deterministic output path for a player's radar
// chart under the given base directory ("" means DefaultBaseDir).
func DefaultRadarPath(baseDir, playerName string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, "radar_"+sanitizeName(playerName)+".png")
}
