package chart

import (
	"slices"
	"sort"
	"strings"
)

// TeamPalette holds a club's primary, secondary and accent colors.
type TeamPalette struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

// StylePreset holds numeric rendering parameters for a named use case.
type StylePreset struct {
	FigWidth  float64 `json:"fig_width,omitempty" yaml:"fig_width,omitempty"`
	FigHeight float64 `json:"fig_height,omitempty" yaml:"fig_height,omitempty"`
	DPI       int     `json:"dpi,omitempty" yaml:"dpi,omitempty"`
	LineWidth float64 `json:"linewidth" yaml:"linewidth"`
	Alpha     float64 `json:"alpha" yaml:"alpha"`
	EdgeColor string  `json:"edgecolor,omitempty" yaml:"edgecolor,omitempty"`
	FontSize  float64 `json:"fontsize" yaml:"fontsize"`
	TitleSize float64 `json:"title_size" yaml:"title_size"`
}

// PitchPreset holds pitch drawing parameters for a named pitch style.
type PitchPreset struct {
	PitchType  string `json:"pitch_type" yaml:"pitch_type"`
	PitchColor string `json:"pitch_color" yaml:"pitch_color"`
	LineColor  string `json:"line_color" yaml:"line_color"`
	LineZorder int    `json:"line_zorder" yaml:"line_zorder"`
	Stripe     bool   `json:"stripe,omitempty" yaml:"stripe,omitempty"`
}

// StyleSet bundles the name-keyed style tables consulted during rendering.
// Each lookup method documents the exact fallback returned on a miss. Tables
// are static data; DefaultStyles returns the built-in set and
// LoadStyleOverrides layers a YAML file on top of it.
type StyleSet struct {
	TeamColors     map[string]TeamPalette `yaml:"team_colors"`
	Colormaps      map[string]string      `yaml:"colormaps"`
	Styles         map[string]StylePreset `yaml:"styles"`
	PitchStyles    map[string]PitchPreset `yaml:"pitch_styles"`
	RadarTemplates map[string][]string    `yaml:"radar_templates"`
	PizzaPalettes  map[string][2]string   `yaml:"pizza_palettes"`
	ShotColors     map[string]string      `yaml:"shot_colors"`
	BodyPartColors map[string]string      `yaml:"body_part_colors"`
}

// TeamColor returns a team color of the given type ("primary", "secondary" or
// "accent"). Unknown teams and unknown color types fall back to "#1a78cf".
func (s *StyleSet) TeamColor(teamName, colorType string) string {
	palette, ok := s.TeamColors[teamName]
	if !ok {
		return radarDefaultColor
	}
	switch colorType {
	case "primary":
		return palette.Primary
	case "secondary":
		return palette.Secondary
	case "accent":
		return palette.Accent
	default:
		return radarDefaultColor
	}
}

// Colormap resolves a colormap alias. Unknown names are returned unchanged,
// since they may name a valid backend colormap directly.
func (s *StyleSet) Colormap(name string) string {
	if mapped, ok := s.Colormaps[name]; ok {
		return mapped
	}
	return name
}

// Style returns a copy of the named style preset, falling back to "minimal".
func (s *StyleSet) Style(name string) StylePreset {
	if preset, ok := s.Styles[name]; ok {
		return preset
	}
	return s.Styles["minimal"]
}

// PitchStyle returns a copy of the named pitch preset, falling back to
// "default".
func (s *StyleSet) PitchStyle(name string) PitchPreset {
	if preset, ok := s.PitchStyles[name]; ok {
		return preset
	}
	return s.PitchStyles["default"]
}

// radarTemplateOrder fixes the key precedence for position matching, so a
// position naming several roles always resolves to the same template.
var radarTemplateOrder = []string{"goalkeeper", "defender", "midfielder", "attacker", "winger"}

// RadarTemplate returns a copy of the metric template whose key appears as a
// substring of the given position (case-insensitive). Keys are tried in the
// fixed precedence order; positions matching several keys resolve to the
// first. Misses fall back to "midfielder".
func (s *StyleSet) RadarTemplate(position string) []string {
	lower := strings.ToLower(position)
	for _, key := range radarTemplateOrder {
		if template, ok := s.RadarTemplates[key]; ok && strings.Contains(lower, key) {
			return append([]string(nil), template...)
		}
	}
	// Keys added through overrides rank after the built-ins, alphabetically.
	extra := make([]string, 0, len(s.RadarTemplates))
	for key := range s.RadarTemplates {
		if !slices.Contains(radarTemplateOrder, key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if strings.Contains(lower, key) {
			return append([]string(nil), s.RadarTemplates[key]...)
		}
	}
	return append([]string(nil), s.RadarTemplates["midfielder"]...)
}

// PizzaPalette returns the named [primary, comparison] color pair, falling
// back to "blue_gold".
func (s *StyleSet) PizzaPalette(name string) [2]string {
	if pair, ok := s.PizzaPalettes[name]; ok {
		return pair
	}
	return s.PizzaPalettes["blue_gold"]
}

// ShotColor returns the color for a shot outcome, or "#999999" when unknown.
func (s *StyleSet) ShotColor(outcome string) string {
	if c, ok := s.ShotColors[outcome]; ok {
		return c
	}
	return "#999999"
}

// BodyPartColor returns the color for a body part, or "#999999" when unknown.
func (s *StyleSet) BodyPartColor(bodyPart string) string {
	if c, ok := s.BodyPartColors[bodyPart]; ok {
		return c
	}
	return "#999999"
}

// DefaultStyles returns the built-in style tables.
func DefaultStyles() *StyleSet {
	return &StyleSet{
		TeamColors: map[string]TeamPalette{
			// Premier League
			"Arsenal":           {Primary: "#EF0107", Secondary: "#023474", Accent: "#FFFFFF"},
			"Liverpool":         {Primary: "#C8102E", Secondary: "#00B2A9", Accent: "#F6EB61"},
			"Manchester City":   {Primary: "#6CABDD", Secondary: "#1C2C5B", Accent: "#FFFFFF"},
			"Manchester United": {Primary: "#DA291C", Secondary: "#FBE122", Accent: "#000000"},
			"Chelsea":           {Primary: "#034694", Secondary: "#FFFFFF", Accent: "#ED1C24"},
			"Tottenham":         {Primary: "#132257", Secondary: "#FFFFFF", Accent: "#000000"},

			// La Liga
			"Barcelona":       {Primary: "#A50044", Secondary: "#004D98", Accent: "#EDBB00"},
			"Real Madrid":     {Primary: "#FEBE10", Secondary: "#00529B", Accent: "#FFFFFF"},
			"Atlético Madrid": {Primary: "#CB3524", Secondary: "#FFFFFF", Accent: "#1B3C84"},

			// Serie A
			"Juventus": {Primary: "#000000", Secondary: "#FFFFFF", Accent: "#D6A022"},
			"Inter":    {Primary: "#010E80", Secondary: "#000000", Accent: "#FFFFFF"},
			"AC Milan": {Primary: "#FB090B", Secondary: "#000000", Accent: "#FFFFFF"},
			"Napoli":   {Primary: "#1E6EC8", Secondary: "#FFFFFF", Accent: "#000000"},
			"Roma":     {Primary: "#8B0304", Secondary: "#F7BF31", Accent: "#000000"},

			// Bundesliga
			"Bayern Munich":     {Primary: "#DC052D", Secondary: "#0066B2", Accent: "#FFFFFF"},
			"Borussia Dortmund": {Primary: "#FDE100", Secondary: "#000000", Accent: "#FFFFFF"},

			// Ligue 1
			"Paris Saint-Germain": {Primary: "#004170", Secondary: "#DA020E", Accent: "#FFFFFF"},

			// Others
			"Atalanta": {Primary: "#1A2E6C", Secondary: "#000000", Accent: "#FFFFFF"},
			"Como":     {Primary: "#1E3B96", Secondary: "#FFFFFF", Accent: "#000000"},
		},
		Colormaps: map[string]string{
			// Heat-based
			"heat":   "YlOrRd",
			"fire":   "hot",
			"sunset": "RdYlBu_r",

			// Cool colors
			"cool":  "Blues",
			"ocean": "GnBu",
			"ice":   "PuBu",

			// Green/Forest
			"forest": "Greens",
			"jungle": "YlGn",

			// Purple/Magenta
			"purple": "Purples",
			"magma":  "magma",

			// Multi-color
			"plasma":  "plasma",
			"viridis": "viridis",
			"rainbow": "turbo",

			// Specific for football
			"pitch_green": "YlGn",
			"pressure":    "Reds",
			"possession":  "Blues",
		},
		Styles: map[string]StylePreset{
			"minimal": {
				LineWidth: 1,
				Alpha:     0.8,
				EdgeColor: "black",
				FontSize:  10,
				TitleSize: 14,
			},
			"bold": {
				LineWidth: 2.5,
				Alpha:     1.0,
				EdgeColor: "white",
				FontSize:  12,
				TitleSize: 18,
			},
			"presentation": {
				FigWidth:  16,
				FigHeight: 10,
				DPI:       300,
				LineWidth: 2,
				Alpha:     0.9,
				FontSize:  14,
				TitleSize: 24,
			},
			"report": {
				FigWidth:  12,
				FigHeight: 8,
				DPI:       200,
				LineWidth: 1.5,
				Alpha:     0.85,
				FontSize:  11,
				TitleSize: 16,
			},
			"social": {
				// Square for Instagram/Twitter
				FigWidth:  10,
				FigHeight: 10,
				DPI:       150,
				LineWidth: 2,
				Alpha:     0.9,
				FontSize:  13,
				TitleSize: 20,
			},
		},
		PitchStyles: map[string]PitchPreset{
			"default": {
				PitchType:  "statsbomb",
				PitchColor: "#22312b",
				LineColor:  "#c7d5cc",
				LineZorder: 2,
			},
			"light": {
				PitchType:  "statsbomb",
				PitchColor: "#ffffff",
				LineColor:  "#000000",
				LineZorder: 2,
			},
			"dark": {
				PitchType:  "statsbomb",
				PitchColor: "#1a1a1a",
				LineColor:  "#ffffff",
				LineZorder: 2,
			},
			"grass": {
				PitchType:  "statsbomb",
				PitchColor: "#7db84d",
				LineColor:  "#ffffff",
				LineZorder: 2,
				Stripe:     true,
			},
			"classic": {
				PitchType:  "statsbomb",
				PitchColor: "#3d8f3d",
				LineColor:  "#ffffff",
				LineZorder: 2,
			},
		},
		RadarTemplates: map[string][]string{
			"goalkeeper": {
				"saves", "goals_against", "clean_sheets",
				"passes_completed", "long_passes",
				"sweeper_clearances", "distribution_accuracy",
			},
			"defender": {
				"tackles", "interceptions", "clearances",
				"blocks", "aerial_duels_won",
				"passes_completed", "progressive_passes",
			},
			"midfielder": {
				"passes_completed", "progressive_passes", "key_passes",
				"tackles", "interceptions",
				"shots", "dribbles_completed",
			},
			"attacker": {
				"goals", "shots", "shots_on_target",
				"key_passes", "dribbles_completed",
				"aerial_duels_won", "touches_in_box",
			},
			"winger": {
				"crosses", "dribbles_completed", "key_passes",
				"shots", "successful_take_ons",
				"passes_into_final_third", "touches_in_box",
			},
		},
		PizzaPalettes: map[string][2]string{
			"blue_gold":    {"#1a78cf", "#ff9300"},
			"red_blue":     {"#d70232", "#1a78cf"},
			"green_purple": {"#00d084", "#7f00ff"},
			"orange_teal":  {"#ff6b35", "#00d5e4"},
			"classic":      {"#ee8130", "#4687bf"},
		},
		ShotColors: map[string]string{
			"Goal":    "#00FF00",
			"Saved":   "#FFA500",
			"Blocked": "#FF0000",
			"Off T":   "#999999",
			"Wayward": "#666666",
			"Post":    "#FFFF00",
		},
		BodyPartColors: map[string]string{
			"Right Foot": "#4287f5",
			"Left Foot":  "#f54242",
			"Head":       "#42f554",
			"Other":      "#999999",
		},
	}
}
