package pitchviz

import (
	"fmt"
	"sort"
)

// ToolGroup is a named collection of registered tools that can be activated
// or deactivated as a unit.
type ToolGroup struct {
	Name        string
	Description string
	Active      bool
	tools       []Tool
}

// Tools returns the tools registered in this group, in registration order.
func (g *ToolGroup) Tools() []Tool {
	out := make([]Tool, len(g.tools))
	copy(out, g.tools)
	return out
}

// Toolkit holds tools registered under named groups. A host framework consults
// ActiveTools to discover what it may call. The zero value is not usable;
// create instances with NewToolkit.
type Toolkit struct {
	groups map[string]*ToolGroup
	byName map[string]Tool
}

// NewToolkit returns an empty Toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{
		groups: map[string]*ToolGroup{},
		byName: map[string]Tool{},
	}
}

// CreateToolGroup creates a named tool group. Creating a group that already
// exists is an error; use Group to look up existing groups.
func (t *Toolkit) CreateToolGroup(name, description string) (*ToolGroup, error) {
	if _, exists := t.groups[name]; exists {
		return nil, fmt.Errorf("tool group %q already exists", name)
	}
	group := &ToolGroup{Name: name, Description: description}
	t.groups[name] = group
	return group, nil
}

// Group returns the named group, if present.
func (t *Toolkit) Group(name string) (*ToolGroup, bool) {
	g, ok := t.groups[name]
	return g, ok
}

// SetGroupActive toggles a group's activation state.
func (t *Toolkit) SetGroupActive(name string, active bool) error {
	g, ok := t.groups[name]
	if !ok {
		return fmt.Errorf("tool group %q not found", name)
	}
	g.Active = active
	return nil
}

// RegisterTool registers a tool under the named group, creating the group if
// it does not exist yet. Tool names must be unique across the toolkit.
func (t *Toolkit) RegisterTool(tool Tool, groupName string) error {
	if tool == nil {
		return fmt.Errorf("cannot register a nil tool")
	}
	name := tool.Name()
	if _, exists := t.byName[name]; exists {
		return fmt.Errorf("tool %q is already registered", name)
	}
	group, ok := t.groups[groupName]
	if !ok {
		group = &ToolGroup{Name: groupName}
		t.groups[groupName] = group
	}
	group.tools = append(group.tools, tool)
	t.byName[name] = tool
	return nil
}

// Tool returns the registered tool with the given name, if any.
func (t *Toolkit) Tool(name string) (Tool, bool) {
	tool, ok := t.byName[name]
	return tool, ok
}

// Tools returns all registered tools sorted by name, regardless of group
// activation.
func (t *Toolkit) Tools() []Tool {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, t.byName[name])
	}
	return tools
}

// ActiveTools returns the tools belonging to active groups, sorted by name.
func (t *Toolkit) ActiveTools() []Tool {
	var tools []Tool
	for _, group := range t.groups {
		if !group.Active {
			continue
		}
		tools = append(tools, group.tools...)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}
