package chart

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadStyleOverrides reads a YAML file of style tables and layers it over the
// built-in defaults. Only the entries present in the file are replaced; every
// other entry keeps its built-in value.
//
// The file mirrors the StyleSet structure:
//
//	team_colors:
//	  Arsenal:
//	    primary: "#EF0107"
//	pizza_palettes:
//	  club: ["#EF0107", "#023474"]
func LoadStyleOverrides(path string) (*StyleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style config: %w", err)
	}
	var overrides StyleSet
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse style config %s: %w", path, err)
	}
	styles := DefaultStyles()
	mergeStringMap(styles.Colormaps, overrides.Colormaps)
	mergeStringMap(styles.ShotColors, overrides.ShotColors)
	mergeStringMap(styles.BodyPartColors, overrides.BodyPartColors)
	for name, palette := range overrides.TeamColors {
		styles.TeamColors[name] = palette
	}
	for name, preset := range overrides.Styles {
		styles.Styles[name] = preset
	}
	for name, preset := range overrides.PitchStyles {
		styles.PitchStyles[name] = preset
	}
	for name, template := range overrides.RadarTemplates {
		styles.RadarTemplates[name] = template
	}
	for name, pair := range overrides.PizzaPalettes {
		styles.PizzaPalettes[name] = pair
	}
	return styles, nil
}

func mergeStringMap(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
