// Package pitchviz generates static chart images summarizing football-player
// performance percentiles and exposes that capability as callable tools for
// agent frameworks. It takes a library-first approach: the chart rendering
// lives in [github.com/deepfield-ai/pitchviz/chart], the agent-facing tools in
// [github.com/deepfield-ai/pitchviz/toolkit], and this root package defines
// the tool contract shared by both.
//
// The core types are:
//
//   - [Tool] and [TypedTool] define callable tools that a host framework can invoke.
//   - [ToolResult] carries tool output as content blocks (text and images) plus
//     a metadata mapping.
//   - [Toolkit] registers tools under named groups that can be activated or
//     deactivated as a unit.
//
// # Quick Start
//
//	tk := pitchviz.NewToolkit()
//	toolkit.RegisterVizTools(tk, "advanced-viz", true)
//	tool, _ := tk.Tool("plot_pizza_chart")
//	result, _ := tool.Call(ctx, input)
//
// The same tools can be served over MCP or HTTP; see cmd/pitchviz.
package pitchviz
