package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamColorLookup(t *testing.T) {
	styles := DefaultStyles()

	require.Equal(t, "#EF0107", styles.TeamColor("Arsenal", "primary"))
	require.Equal(t, "#023474", styles.TeamColor("Arsenal", "secondary"))
	require.Equal(t, "#FFFFFF", styles.TeamColor("Arsenal", "accent"))

	// Unknown team falls back to the default blue
	require.Equal(t, "#1a78cf", styles.TeamColor("Wrexham", "primary"))
	// Unknown color type too
	require.Equal(t, "#1a78cf", styles.TeamColor("Arsenal", "tertiary"))
}

func TestColormapLookup(t *testing.T) {
	styles := DefaultStyles()
	require.Equal(t, "YlOrRd", styles.Colormap("heat"))
	require.Equal(t, "Blues", styles.Colormap("possession"))
	// Unknown names pass through unchanged
	require.Equal(t, "inferno", styles.Colormap("inferno"))
}

func TestStyleLookup(t *testing.T) {
	styles := DefaultStyles()

	bold := styles.Style("bold")
	require.Equal(t, 2.5, bold.LineWidth)
	require.Equal(t, "white", bold.EdgeColor)

	// Miss falls back to minimal
	fallback := styles.Style("nonexistent")
	require.Equal(t, styles.Styles["minimal"], fallback)

	// The returned preset is a copy
	fallback.LineWidth = 99
	require.Equal(t, 1.0, styles.Styles["minimal"].LineWidth)
}

func TestPitchStyleLookup(t *testing.T) {
	styles := DefaultStyles()

	grass := styles.PitchStyle("grass")
	require.True(t, grass.Stripe)
	require.Equal(t, "#7db84d", grass.PitchColor)

	fallback := styles.PitchStyle("unknown")
	require.Equal(t, styles.PitchStyles["default"], fallback)
}

func TestRadarTemplateLookup(t *testing.T) {
	styles := DefaultStyles()

	require.Contains(t, styles.RadarTemplate("goalkeeper"), "saves")
	// Substring, case-insensitive match
	require.Contains(t, styles.RadarTemplate("Central Defender"), "tackles")
	require.Contains(t, styles.RadarTemplate("Left Winger"), "crosses")

	// Miss falls back to midfielder
	require.Equal(t, styles.RadarTemplates["midfielder"], styles.RadarTemplate("manager"))

	// The returned template is a copy
	template := styles.RadarTemplate("goalkeeper")
	template[0] = "mutated"
	require.Equal(t, "saves", styles.RadarTemplates["goalkeeper"][0])
}

func TestRadarTemplateMultiRolePrecedence(t *testing.T) {
	styles := DefaultStyles()

	// Positions naming several roles resolve to the earliest key in the
	// precedence order, every run.
	for i := 0; i < 50; i++ {
		require.Equal(t, styles.RadarTemplates["midfielder"],
			styles.RadarTemplate("Attacking Midfielder / Winger"))
		require.Equal(t, styles.RadarTemplates["defender"],
			styles.RadarTemplate("defender, occasional winger"))
	}
}

func TestPizzaPaletteLookup(t *testing.T) {
	styles := DefaultStyles()
	require.Equal(t, [2]string{"#d70232", "#1a78cf"}, styles.PizzaPalette("red_blue"))
	require.Equal(t, [2]string{"#1a78cf", "#ff9300"}, styles.PizzaPalette("unknown"))
}

func TestShotAndBodyPartColors(t *testing.T) {
	styles := DefaultStyles()
	require.Equal(t, "#00FF00", styles.ShotColor("Goal"))
	require.Equal(t, "#999999", styles.ShotColor("Unknown Outcome"))
	require.Equal(t, "#42f554", styles.BodyPartColor("Head"))
	require.Equal(t, "#999999", styles.BodyPartColor("Shoulder"))
}

func TestLoadStyleOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	content := `
team_colors:
  Wrexham:
    primary: "#D2232A"
    secondary: "#FFFFFF"
    accent: "#046A38"
pizza_palettes:
  club: ["#D2232A", "#046A38"]
colormaps:
  heat: inferno
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	styles, err := LoadStyleOverrides(path)
	require.NoError(t, err)

	// Overridden and new entries are applied
	require.Equal(t, "#D2232A", styles.TeamColor("Wrexham", "primary"))
	require.Equal(t, [2]string{"#D2232A", "#046A38"}, styles.PizzaPalette("club"))
	require.Equal(t, "inferno", styles.Colormap("heat"))

	// Untouched built-ins remain
	require.Equal(t, "#EF0107", styles.TeamColor("Arsenal", "primary"))
	require.Equal(t, "Blues", styles.Colormap("possession"))
}

func TestLoadStyleOverridesMissingFile(t *testing.T) {
	_, err := LoadStyleOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
