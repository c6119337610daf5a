package toolkit

import (
	"github.com/deepfield-ai/pitchviz"
)

// DefaultVizGroup is the tool group the chart tools register under when no
// group name is supplied.
const DefaultVizGroup = "advanced-viz"

// RegisterVizTools registers the chart tools on the given toolkit under the
// named group, creating the group if needed and optionally activating it.
// Tools use default options; construct them directly for custom filesystems
// or output directories.
func RegisterVizTools(tk *pitchviz.Toolkit, groupName string, activate bool) error {
	if groupName == "" {
		groupName = DefaultVizGroup
	}
	if _, ok := tk.Group(groupName); !ok {
		if _, err := tk.CreateToolGroup(groupName, "Visualization tools rendering player percentile charts as PNG images."); err != nil {
			return err
		}
	}
	if err := tk.RegisterTool(NewPizzaChartTool(PizzaChartToolOptions{}), groupName); err != nil {
		return err
	}
	if err := tk.RegisterTool(NewRadarChartTool(RadarChartToolOptions{}), groupName); err != nil {
		return err
	}
	if activate {
		return tk.SetGroupActive(groupName, true)
	}
	return nil
}
