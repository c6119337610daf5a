// Package toolkit provides the agent-facing chart tools.
//
// Each tool wraps a chart renderer from
// [github.com/deepfield-ai/pitchviz/chart] in the tool-call contract: it
// validates structured arguments, invokes the renderer, reads the written
// image back, base64-encodes it, and packages a [pitchviz.ToolResult] with a
// text summary, an embedded image block and a metadata mapping. Every failure
// is converted into an error-shaped result at this boundary; no error escapes
// a tool Call for user-level failures.
//
// Tools are registered on a [pitchviz.Toolkit] with [RegisterVizTools].
package toolkit
