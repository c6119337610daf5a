package pitchviz

import (
	"context"
	"testing"

	"github.com/deepfield-ai/pitchviz/schema"
	"github.com/stretchr/testify/require"
)

type namedTool struct {
	name string
}

func (t *namedTool) Name() string                { return t.name }
func (t *namedTool) Description() string         { return "test tool " + t.name }
func (t *namedTool) Schema() *schema.Schema      { return &schema.Schema{Type: "object"} }
func (t *namedTool) Annotations() *ToolAnnotations { return &ToolAnnotations{} }

func (t *namedTool) Call(ctx context.Context, input any) (*ToolResult, error) {
	return NewToolResultText(t.name), nil
}

func TestToolkitRegistration(t *testing.T) {
	tk := NewToolkit()

	group, err := tk.CreateToolGroup("viz", "chart tools")
	require.NoError(t, err)
	require.Equal(t, "viz", group.Name)
	require.False(t, group.Active)

	// Duplicate group creation fails
	_, err = tk.CreateToolGroup("viz", "again")
	require.Error(t, err)

	require.NoError(t, tk.RegisterTool(&namedTool{name: "beta"}, "viz"))
	require.NoError(t, tk.RegisterTool(&namedTool{name: "alpha"}, "viz"))

	// Duplicate tool names fail regardless of group
	require.Error(t, tk.RegisterTool(&namedTool{name: "alpha"}, "other"))
	require.Error(t, tk.RegisterTool(nil, "viz"))

	tool, ok := tk.Tool("alpha")
	require.True(t, ok)
	require.Equal(t, "alpha", tool.Name())

	// Tools() is sorted by name; group.Tools() keeps registration order
	all := tk.Tools()
	require.Len(t, all, 2)
	require.Equal(t, "alpha", all[0].Name())
	require.Equal(t, "beta", all[1].Name())
	require.Equal(t, "beta", group.Tools()[0].Name())
}

func TestToolkitActivation(t *testing.T) {
	tk := NewToolkit()
	require.NoError(t, tk.RegisterTool(&namedTool{name: "alpha"}, "viz"))

	// Registering into an unknown group creates it inactive
	require.Empty(t, tk.ActiveTools())

	require.NoError(t, tk.SetGroupActive("viz", true))
	require.Len(t, tk.ActiveTools(), 1)

	require.NoError(t, tk.SetGroupActive("viz", false))
	require.Empty(t, tk.ActiveTools())

	require.Error(t, tk.SetGroupActive("missing", true))
}
