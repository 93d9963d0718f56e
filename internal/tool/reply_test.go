package tool

import (
	"testing"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"github.com/stretchr/testify/assert"
)

func TestTextReply(t *testing.T) {
	tests := []struct {
		name   string
		result models.Result
		want   string
	}{
		{"plain", models.PlainText{Text: "hello"}, "hello"},
		{
			"search with sources",
			models.SearchResult{Text: "answer", Citations: []models.Citation{{Title: "A", URL: "https://a"}, {Title: "B", URL: "https://b"}}},
			"answer\n\n## Sources\n- [A](https://a)\n- [B](https://b)",
		},
		{"search without sources", models.SearchResult{Text: "answer"}, "answer"},
		{"reasoning with trace", models.ReasoningResult{Text: "42", Trace: "think"}, "## Reasoning\nthink\n\n## Answer\n42"},
		{"reasoning without trace", models.ReasoningResult{Text: "42"}, "42"},
		{
			"code",
			models.CodeExecutionResult{Text: "done", Code: "print(1)", Output: "1"},
			"done\n\n## Code\n```python\nprint(1)\n```\n\n## Output\n```\n1\n```",
		},
		{"file", models.FileUploadResult{Text: "summary", FileName: "a.pdf", FileID: "file-1"}, "File: a.pdf\nFile ID: file-1\n\nsummary"},
		{"file without name", models.FileUploadResult{Text: "answer", FileID: "file-1"}, "File ID: file-1\n\nanswer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := textReply(tt.result)
			assert.False(t, reply.IsError)
			assert.Equal(t, tt.want, reply.Text())
		})
	}
}

func TestTextReply_EmptyIsError(t *testing.T) {
	reply := textReply(models.PlainText{Text: "  \n"})
	assert.True(t, reply.IsError)
	assert.Equal(t, emptyTextMessage, reply.Text())
}

func TestTextReply_EmptyFileAnswerIsError(t *testing.T) {
	for _, r := range []models.FileUploadResult{
		{FileName: "main.go", FileID: models.InlineFileID},
		{FileID: "file-1", Text: "\n"},
	} {
		reply := textReply(r)
		assert.True(t, reply.IsError)
		assert.Equal(t, emptyTextMessage, reply.Text())
	}
}
