package tool

import (
	"github.com/invopop/jsonschema"
)

// Declaration declares a tool's name, purpose and input schema.
type Declaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Request is one tool invocation.
type Request struct {
	// ID correlates log records for one invocation.
	ID        string
	Name      string
	Arguments map[string]any
}

// Reply is the only artifact returned to the caller.
type Reply struct {
	Content []Content
	IsError bool
}

// Content is implemented by all reply content types.
// Consumers use type switches to render each type.
type Content interface {
	isContent()
}

// TextContent is a text part of a reply.
type TextContent struct {
	Text string
}

func (TextContent) isContent() {}

// ImageContent is an inline image part of a reply.
type ImageContent struct {
	Data     []byte
	MIMEType string
}

func (ImageContent) isContent() {}

// TextReply returns a successful single-text reply.
func TextReply(text string) Reply {
	return Reply{Content: []Content{TextContent{Text: text}}}
}

// ErrorReply returns an error reply carrying msg.
func ErrorReply(msg string) Reply {
	return Reply{Content: []Content{TextContent{Text: msg}}, IsError: true}
}

// Text concatenates every text part, one per line.
func (r Reply) Text() string {
	var out string
	for _, c := range r.Content {
		if t, ok := c.(TextContent); ok {
			if out != "" {
				out += "\n"
			}
			out += t.Text
		}
	}
	return out
}
