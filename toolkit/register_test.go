package toolkit

import (
	"testing"

	"github.com/deepfield-ai/pitchviz"
	"github.com/stretchr/testify/require"
)

func TestRegisterVizTools(t *testing.T) {
	tk := pitchviz.NewToolkit()
	require.NoError(t, RegisterVizTools(tk, "", true))

	group, ok := tk.Group(DefaultVizGroup)
	require.True(t, ok)
	require.True(t, group.Active)
	require.Len(t, group.Tools(), 2)

	_, ok = tk.Tool("plot_pizza_chart")
	require.True(t, ok)
	_, ok = tk.Tool("plot_radar_chart")
	require.True(t, ok)

	active := tk.ActiveTools()
	require.Len(t, active, 2)
	require.Equal(t, "plot_pizza_chart", active[0].Name())
	require.Equal(t, "plot_radar_chart", active[1].Name())
}

func TestRegisterVizToolsInactive(t *testing.T) {
	tk := pitchviz.NewToolkit()
	require.NoError(t, RegisterVizTools(tk, "viz", false))

	group, ok := tk.Group("viz")
	require.True(t, ok)
	require.False(t, group.Active)
	require.Empty(t, tk.ActiveTools())
	require.Len(t, tk.Tools(), 2)
}

func TestRegisterVizToolsTwice(t *testing.T) {
	tk := pitchviz.NewToolkit()
	require.NoError(t, RegisterVizTools(tk, "viz", true))
	// Re-registering collides on tool names
	require.Error(t, RegisterVizTools(tk, "viz", true))
}

func TestRegisterVizToolsExistingGroup(t *testing.T) {
	tk := pitchviz.NewToolkit()
	_, err := tk.CreateToolGroup("viz", "preexisting")
	require.NoError(t, err)
	require.NoError(t, RegisterVizTools(tk, "viz", true))

	group, _ := tk.Group("viz")
	require.Equal(t, "preexisting", group.Description)
	require.True(t, group.Active)
}
