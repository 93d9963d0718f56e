package extract

import (
	"testing"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"github.com/stretchr/testify/assert"
)

func citation(title, url string) models.Annotation {
	return models.Annotation{Kind: models.AnnotationURLCitation, Title: title, URL: url}
}

func TestExtract_NilResponse_Empty(t *testing.T) {
	ex := Extract(nil)
	assert.Empty(t, ex.Text)
	assert.Empty(t, ex.Citations)
}

func TestExtract_MessageText_ConcatenatedWithoutSeparator(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: "Hello, "},
			models.OutputText{Text: "world"},
		}},
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: "!"},
		}},
	}}

	ex := Extract(resp)

	assert.Equal(t, "Hello, world!", ex.Text)
	assert.Equal(t, models.PlainText{Text: "Hello, world!"}, ex.PlainText())
}

func TestExtract_Citations_DedupFirstOccurrenceWins(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.WebSearchCallItem{ID: "ws_1", Status: "completed"},
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: "Go 1.25 shipped.", Annotations: []models.Annotation{
				citation("Go Blog", "https://go.dev/blog"),
				citation("Release Notes", "https://go.dev/doc/go1.25"),
			}},
		}},
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: " More.", Annotations: []models.Annotation{
				citation("Go Blog (again)", "https://go.dev/blog"),
			}},
		}},
	}}

	ex := Extract(resp)

	assert.Equal(t, "Go 1.25 shipped. More.", ex.Text)
	assert.Equal(t, []models.Citation{
		{Title: "Go Blog", URL: "https://go.dev/blog"},
		{Title: "Release Notes", URL: "https://go.dev/doc/go1.25"},
	}, ex.Citations)
}

func TestExtract_Citations_FirstSeenOrderForAnyDuplicateLayout(t *testing.T) {
	tests := []struct {
		name string
		urls []string
		want []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"adjacent duplicate", []string{"a", "a", "b"}, []string{"a", "b"}},
		{"trailing duplicate", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"all same", []string{"x", "x", "x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var anns []models.Annotation
			for i, u := range tt.urls {
				anns = append(anns, citation(string(rune('A'+i)), u))
			}
			resp := &models.UpstreamResponse{Items: []models.OutputItem{
				models.MessageItem{Parts: []models.MessagePart{models.OutputText{Annotations: anns}}},
			}}

			ex := Extract(resp)

			var got []string
			for _, c := range ex.Citations {
				got = append(got, c.URL)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "A", ex.Citations[0].Title, "first occurrence keeps its title")
		})
	}
}

func TestExtract_Citation_MissingTitleDefaults(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: "x", Annotations: []models.Annotation{citation("", "https://example.com")}},
		}},
	}}

	ex := Extract(resp)

	assert.Equal(t, []models.Citation{{Title: DefaultCitationTitle, URL: "https://example.com"}}, ex.Citations)
}

func TestExtract_NonURLAnnotations_Ignored(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{
			models.OutputText{Text: "x", Annotations: []models.Annotation{
				{Kind: models.AnnotationFileCitation, Title: "doc.pdf"},
				{Kind: models.AnnotationURLCitation, Title: "no url"},
			}},
		}},
	}}

	assert.Empty(t, Extract(resp).Citations)
}

func TestExtract_Reasoning_TraceSeparateFromAnswer(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.ReasoningItem{Summary: []string{"First, add. ", "Then check."}},
		models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: "4"}}},
	}}

	got := Extract(resp).ReasoningResult()

	assert.Equal(t, models.ReasoningResult{Text: "4", Trace: "First, add. Then check."}, got)
}

func TestExtract_CodeInterpreter_JoinsCodeAndLogs(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.CodeInterpreterCallItem{
			Code: "x = 2",
			Outputs: []models.CodeOutput{
				{Kind: models.CodeOutputLogs, Logs: "ok"},
				{Kind: models.CodeOutputImage, URL: "https://files/plot.png"},
			},
		},
		models.CodeInterpreterCallItem{
			Code:    "print(x * 2)",
			Outputs: []models.CodeOutput{{Kind: models.CodeOutputLogs, Logs: "4"}},
		},
		models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: "The answer is 4."}}},
	}}

	got := Extract(resp).CodeExecutionResult()

	assert.Equal(t, models.CodeExecutionResult{
		Text:   "The answer is 4.",
		Code:   "x = 2\nprint(x * 2)",
		Output: "ok\n4",
	}, got)
}

func TestExtract_Refusal_UsedOnlyWithoutText(t *testing.T) {
	onlyRefusal := &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{models.Refusal{Text: "I can't help with that."}}},
	}}
	assert.Equal(t, "I can't help with that.", Extract(onlyRefusal).Answer())

	both := &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{
			models.Refusal{Text: "partial refusal"},
			models.OutputText{Text: "answer"},
		}},
	}}
	assert.Equal(t, "answer", Extract(both).Answer())
}

func TestExtract_UnknownItems_Recorded(t *testing.T) {
	resp := &models.UpstreamResponse{Items: []models.OutputItem{
		models.UnknownItem{Type: "computer_call"},
		models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: "hi"}}},
	}}

	ex := Extract(resp)

	assert.Equal(t, "hi", ex.Text)
	assert.Equal(t, []string{"computer_call"}, ex.Unknown)
}
