package models

// Result is implemented by every normalized result variant.
// Exactly one variant is produced per upstream call.
type Result interface {
	isResult()
}

// Citation is a web source attached to generated text.
type Citation struct {
	Title string
	URL   string
}

// PlainText is generated text with nothing attached.
type PlainText struct {
	Text string
}

func (PlainText) isResult() {}

// SearchResult is generated text with deduplicated citations in first-seen order.
type SearchResult struct {
	Text      string
	Citations []Citation
}

func (SearchResult) isResult() {}

// ReasoningResult separates the final answer from the reasoning trace.
type ReasoningResult struct {
	Text  string
	Trace string
}

func (ReasoningResult) isResult() {}

// CodeExecutionResult carries the answer, the code that ran and its log output.
type CodeExecutionResult struct {
	Text   string
	Code   string
	Output string
}

func (CodeExecutionResult) isResult() {}

// InlineFileID is returned as FileID when a file was inlined instead of uploaded.
const InlineFileID = "inline"

// FileUploadResult is the answer about an uploaded (or inlined) file.
type FileUploadResult struct {
	Text     string
	FileName string
	FileID   string
}

func (FileUploadResult) isResult() {}

// MediaResult is an ordered set of generated images.
type MediaResult struct {
	Images   []GeneratedImage
	MIMEType string
}

func (MediaResult) isResult() {}

// AudioResult is synthesized speech.
type AudioResult struct {
	Data   []byte
	Format string
}

func (AudioResult) isResult() {}
