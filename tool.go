package pitchviz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepfield-ai/pitchviz/schema"
)

// ToolAnnotations are optional properties that describe tool behavior to a host
// framework.
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

type ToolResultContentType string

const (
	ToolResultContentTypeText  ToolResultContentType = "text"
	ToolResultContentTypeImage ToolResultContentType = "image"
)

func (t ToolResultContentType) String() string {
	return string(t)
}

// ToolResultContent is a single content block in a tool result. Text blocks
// set Text; image blocks carry base64-encoded bytes in Data along with the
// MimeType and an Alt description.
type ToolResultContent struct {
	Type     ToolResultContentType `json:"type"`
	Text     string                `json:"text,omitempty"`
	Data     string                `json:"data,omitempty"`
	MimeType string                `json:"mimeType,omitempty"`
	Alt      string                `json:"alt,omitempty"`
}

// ToolResult is the output from a tool call. Metadata carries structured
// information about the result for consumers that don't parse content blocks.
type ToolResult struct {
	Content  []*ToolResultContent `json:"content"`
	Metadata map[string]any       `json:"metadata,omitempty"`
	IsError  bool                 `json:"isError,omitempty"`
}

// TextSummary returns the concatenated text of all text content blocks.
func (r *ToolResult) TextSummary() string {
	var text string
	for _, c := range r.Content {
		if c.Type == ToolResultContentTypeText {
			if text != "" {
				text += "\n"
			}
			text += c.Text
		}
	}
	return text
}

// ImageContent returns the first image content block, if any.
func (r *ToolResult) ImageContent() *ToolResultContent {
	for _, c := range r.Content {
		if c.Type == ToolResultContentTypeImage {
			return c
		}
	}
	return nil
}

// NewToolResult creates a new ToolResult with the given content.
func NewToolResult(content ...*ToolResultContent) *ToolResult {
	return &ToolResult{Content: content}
}

// NewToolResultText creates a new ToolResult with the given text content.
func NewToolResultText(text string) *ToolResult {
	return NewToolResult(&ToolResultContent{
		Type: ToolResultContentTypeText,
		Text: text,
	})
}

// NewToolResultError creates a new ToolResult containing an error message.
// The metadata carries the message under the "error" key.
func NewToolResultError(text string) *ToolResult {
	return NewToolResultErrorWithMetadata(text, map[string]any{"error": text})
}

// NewToolResultErrorWithMetadata creates an error ToolResult with caller
// supplied metadata. Error results never contain image blocks.
func NewToolResultErrorWithMetadata(text string, metadata map[string]any) *ToolResult {
	return &ToolResult{
		IsError:  true,
		Metadata: metadata,
		Content: []*ToolResultContent{
			{
				Type: ToolResultContentTypeText,
				Text: text,
			},
		},
	}
}

// Tool is an interface for a tool that can be called by a host framework.
type Tool interface {
	// Name of the tool.
	Name() string

	// Description of the tool.
	Description() string

	// Schema describes the parameters used to call the tool.
	Schema() *schema.Schema

	// Annotations returns optional properties that describe tool behavior.
	Annotations() *ToolAnnotations

	// Call is the function that is called to use the tool.
	Call(ctx context.Context, input any) (*ToolResult, error)
}

// TypedTool is a tool that can be called with a specific type of input.
type TypedTool[T any] interface {
	// Name of the tool.
	Name() string

	// Description of the tool.
	Description() string

	// Schema describes the parameters used to call the tool.
	Schema() *schema.Schema

	// Annotations returns optional properties that describe tool behavior.
	Annotations() *ToolAnnotations

	// Call is the function that is called to use the tool.
	Call(ctx context.Context, input T) (*ToolResult, error)
}

// ToolAdapter creates a new TypedToolAdapter for the given tool.
func ToolAdapter[T any](tool TypedTool[T]) *TypedToolAdapter[T] {
	return &TypedToolAdapter[T]{tool: tool}
}

// TypedToolAdapter is an adapter that allows a TypedTool to be used as a
// regular Tool. The Call method accepts `input any` and internally unmarshals
// the input to the correct type before passing it to the TypedTool.
type TypedToolAdapter[T any] struct {
	tool TypedTool[T]
}

func (t *TypedToolAdapter[T]) Name() string {
	return t.tool.Name()
}

func (t *TypedToolAdapter[T]) Description() string {
	return t.tool.Description()
}

func (t *TypedToolAdapter[T]) Schema() *schema.Schema {
	return t.tool.Schema()
}

func (t *TypedToolAdapter[T]) Annotations() *ToolAnnotations {
	return t.tool.Annotations()
}

func (t *TypedToolAdapter[T]) Call(ctx context.Context, input any) (*ToolResult, error) {
	// Pass through if the input is already the correct type
	if converted, ok := input.(T); ok {
		return t.tool.Call(ctx, converted)
	}

	// Access the raw JSON
	var data []byte
	var err error
	if raw, ok := input.(json.RawMessage); ok {
		data = raw
	} else if raw, ok := input.([]byte); ok {
		data = raw
	} else {
		data, err = json.Marshal(input)
		if err != nil {
			errMessage := fmt.Sprintf("invalid json for tool %s: %v", t.Name(), err)
			return NewToolResultError(errMessage), nil
		}
	}

	// Unmarshal into the typed input
	var typedInput T
	err = json.Unmarshal(data, &typedInput)
	if err != nil {
		errMessage := fmt.Sprintf("invalid json for tool %s: %v", t.Name(), err)
		return NewToolResultError(errMessage), nil
	}
	return t.tool.Call(ctx, typedInput)
}

// Unwrap returns the underlying TypedTool.
func (t *TypedToolAdapter[T]) Unwrap() TypedTool[T] {
	return t.tool
}
