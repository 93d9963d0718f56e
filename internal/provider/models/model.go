package models

// Role tags a content block in an UpstreamRequest.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// UpstreamRequest encapsulates all parameters for a Responses-style call.
// Blocks are sent in order; an instruction block, when present, comes first.
type UpstreamRequest struct {
	Model  string
	Blocks []ContentBlock

	// Activations lists the built-in upstream behaviors to enable
	Activations []Activation

	// Optional sampling parameters.
	// Pointers distinguish between "not set" and "zero value".
	Temperature     *float64
	MaxOutputTokens *int
}

// ContentBlock is one role-tagged message in an UpstreamRequest.
type ContentBlock struct {
	Role  Role
	Parts []ContentPart
}

// ContentPart is implemented by all content part types.
type ContentPart interface {
	isContentPart()
}

// TextPart is plain text input.
type TextPart struct {
	Text string
}

func (TextPart) isContentPart() {}

// ImagePart is an inline image for vision input.
type ImagePart struct {
	Data     []byte
	MIMEType string
	Detail   ImageDetail
}

func (ImagePart) isContentPart() {}

// FileRefPart references a file previously uploaded to the provider.
type FileRefPart struct {
	FileID string
}

func (FileRefPart) isContentPart() {}

// ImageDetail is the resolution hint attached to vision input.
type ImageDetail string

const (
	ImageDetailLow  ImageDetail = "low"
	ImageDetailHigh ImageDetail = "high"
	ImageDetailAuto ImageDetail = "auto"
)

// Activation is implemented by all capability activations.
type Activation interface {
	isActivation()
}

// WebSearch enables provider-side web search.
type WebSearch struct {
	// ContextSize is one of "low", "medium", "high"
	ContextSize string
}

func (WebSearch) isActivation() {}

// CodeExecution enables the provider's sandboxed code interpreter.
type CodeExecution struct{}

func (CodeExecution) isActivation() {}

// URLContext asks the provider to retrieve the pages named in the prompt.
// Backends without a dedicated fetch tool fall back to web search.
type URLContext struct{}

func (URLContext) isActivation() {}

// Reasoning enables extended reasoning at the given effort.
type Reasoning struct {
	// Effort is one of "low", "medium", "high"
	Effort string
}

func (Reasoning) isActivation() {}

// UpstreamResponse is the ordered output of a Responses-style call.
type UpstreamResponse struct {
	Items []OutputItem
}

// OutputItem is implemented by every output item kind.
// Consumers switch exhaustively over the concrete types.
type OutputItem interface {
	isOutputItem()
}

// MessageItem is an assistant message made of text and refusal parts.
type MessageItem struct {
	Parts []MessagePart
}

func (MessageItem) isOutputItem() {}

// WebSearchCallItem records a web search the provider performed.
type WebSearchCallItem struct {
	ID     string
	Status string
}

func (WebSearchCallItem) isOutputItem() {}

// ReasoningItem carries summary fragments of the model's reasoning.
type ReasoningItem struct {
	Summary []string
}

func (ReasoningItem) isOutputItem() {}

// CodeInterpreterCallItem records code the provider ran and what it produced.
type CodeInterpreterCallItem struct {
	Code    string
	Outputs []CodeOutput
}

func (CodeInterpreterCallItem) isOutputItem() {}

// UnknownItem stands in for output kinds this package does not model.
type UnknownItem struct {
	Type string
}

func (UnknownItem) isOutputItem() {}

// MessagePart is implemented by the parts of a MessageItem.
type MessagePart interface {
	isMessagePart()
}

// OutputText is generated text with its annotations.
type OutputText struct {
	Text        string
	Annotations []Annotation
}

func (OutputText) isMessagePart() {}

// Refusal is the model declining to answer.
type Refusal struct {
	Text string
}

func (Refusal) isMessagePart() {}

// AnnotationKind identifies what an annotation points at.
type AnnotationKind string

const (
	AnnotationURLCitation  AnnotationKind = "url_citation"
	AnnotationFileCitation AnnotationKind = "file_citation"
)

// Annotation is metadata attached to a span of OutputText.
type Annotation struct {
	Kind  AnnotationKind
	Title string
	URL   string
}

// CodeOutputKind is the kind of a code interpreter output.
type CodeOutputKind string

const (
	CodeOutputLogs  CodeOutputKind = "logs"
	CodeOutputImage CodeOutputKind = "image"
)

// CodeOutput is one output of a code interpreter call.
type CodeOutput struct {
	Kind CodeOutputKind
	Logs string
	URL  string
}

// UploadedFile is a provider-owned file handle.
type UploadedFile struct {
	ID       string
	Filename string
}

// ImageRequest describes an image generation or edit call.
type ImageRequest struct {
	Model  string
	Prompt string
	N      int

	// Size, Quality, Background and OutputFormat are passed through as given;
	// empty means provider default.
	Size         string
	Quality      string
	Background   string
	OutputFormat string

	// Edit only
	Image     []byte
	ImageName string
	Mask      []byte
	MaskName  string
}

// GeneratedImage is one image returned by the provider.
type GeneratedImage struct {
	Data          []byte
	RevisedPrompt string
}

// SpeechRequest describes a text-to-speech call.
type SpeechRequest struct {
	Model        string
	Input        string
	Voice        string
	Instructions string
	Speed        float64
	Format       string
}

// TranscriptionRequest describes a speech-to-text call.
type TranscriptionRequest struct {
	Model    string
	Audio    []byte
	Filename string
	Language string
	Prompt   string
}
