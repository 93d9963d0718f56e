package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"google.golang.org/genai"
)

// thinkingBudgets maps a reasoning effort to a thinking token budget.
var thinkingBudgets = map[string]int32{
	"low":    1024,
	"medium": 8192,
	"high":   24576,
}

// toGeminiRequest converts a provider-neutral request to Gemini contents and config.
// System blocks become the system instruction; every other block is a user turn.
// File references are rejected: Gemini has no file store here, so no id can be valid.
func toGeminiRequest(req *models.UpstreamRequest) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{}
	contents := make([]*genai.Content, 0, len(req.Blocks))

	for _, block := range req.Blocks {
		parts, err := toGeminiParts(block.Parts)
		if err != nil {
			return nil, nil, err
		}
		if len(parts) == 0 {
			continue
		}
		if block.Role == models.RoleSystem {
			if config.SystemInstruction == nil {
				config.SystemInstruction = &genai.Content{}
			}
			config.SystemInstruction.Parts = append(config.SystemInstruction.Parts, parts...)
			continue
		}
		contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: parts})
	}

	for _, act := range req.Activations {
		switch a := act.(type) {
		case models.WebSearch:
			config.Tools = append(config.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		case models.URLContext:
			config.Tools = append(config.Tools, &genai.Tool{URLContext: &genai.URLContext{}})
		case models.CodeExecution:
			config.Tools = append(config.Tools, &genai.Tool{CodeExecution: &genai.ToolCodeExecution{}})
		case models.Reasoning:
			tc := &genai.ThinkingConfig{IncludeThoughts: true}
			if budget, ok := thinkingBudgets[a.Effort]; ok {
				tc.ThinkingBudget = &budget
			}
			config.ThinkingConfig = tc
		}
	}

	if req.Temperature != nil {
		t := float32(*req.Temperature)
		config.Temperature = &t
	}
	if req.MaxOutputTokens != nil {
		config.MaxOutputTokens = int32(*req.MaxOutputTokens)
	}

	return contents, config, nil
}

func toGeminiParts(parts []models.ContentPart) ([]*genai.Part, error) {
	out := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case models.TextPart:
			out = append(out, genai.NewPartFromText(p.Text))
		case models.ImagePart:
			out = append(out, genai.NewPartFromBytes(p.Data, p.MIMEType))
		case models.FileRefPart:
			return nil, fmt.Errorf("file reference %q: %w", p.FileID, models.ErrUnsupportedCapability)
		}
	}
	return out, nil
}

// fromGeminiResponse converts the first candidate into ordered output items:
// thoughts, then web search and code execution calls, then the answer message.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*models.UpstreamResponse, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, &models.ProviderError{
				Code:    models.ErrorCodeContentBlocked,
				Status:  400,
				Message: fmt.Sprintf("prompt blocked by safety filters (%s)", resp.PromptFeedback.BlockReason),
			}
		}
		return &models.UpstreamResponse{}, nil
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &models.ProviderError{
			Code:    models.ErrorCodeContentBlocked,
			Status:  400,
			Message: "content blocked by safety filters",
		}
	}

	var (
		thoughts []string
		calls    []models.OutputItem
		text     strings.Builder
	)

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			switch {
			case part.Thought && part.Text != "":
				thoughts = append(thoughts, part.Text)
			case part.ExecutableCode != nil:
				calls = append(calls, models.CodeInterpreterCallItem{Code: part.ExecutableCode.Code})
			case part.CodeExecutionResult != nil:
				appendCodeResult(&calls, part.CodeExecutionResult)
			case part.Text != "":
				text.WriteString(part.Text)
			}
		}
	}

	out := &models.UpstreamResponse{}
	if len(thoughts) > 0 {
		out.Items = append(out.Items, models.ReasoningItem{Summary: thoughts})
	}

	answer := models.OutputText{Text: text.String()}
	if gm := candidate.GroundingMetadata; gm != nil {
		for _, q := range gm.WebSearchQueries {
			out.Items = append(out.Items, models.WebSearchCallItem{ID: q, Status: "completed"})
		}
		for _, chunk := range gm.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			answer.Annotations = append(answer.Annotations, models.Annotation{
				Kind:  models.AnnotationURLCitation,
				Title: chunk.Web.Title,
				URL:   chunk.Web.URI,
			})
		}
	}

	out.Items = append(out.Items, calls...)
	if answer.Text != "" || len(answer.Annotations) > 0 {
		out.Items = append(out.Items, models.MessageItem{Parts: []models.MessagePart{answer}})
	}
	return out, nil
}

// appendCodeResult attaches a result to the most recent code call, or records
// a call with no code when the result arrives first.
func appendCodeResult(calls *[]models.OutputItem, result *genai.CodeExecutionResult) {
	output := models.CodeOutput{Kind: models.CodeOutputLogs, Logs: result.Output}
	if n := len(*calls); n > 0 {
		if call, ok := (*calls)[n-1].(models.CodeInterpreterCallItem); ok {
			call.Outputs = append(call.Outputs, output)
			(*calls)[n-1] = call
			return
		}
	}
	*calls = append(*calls, models.CodeInterpreterCallItem{Outputs: []models.CodeOutput{output}})
}

// mapGeminiError maps Gemini API errors to provider errors.
// The SDK returns APIError by value; pointers are accepted too.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return err
	}

	code := models.CodeForStatus(apiErr.Code)
	msg := apiErr.Message
	if msg == "" {
		msg = apiErr.Status
	}
	return &models.ProviderError{
		Code:       code,
		Status:     apiErr.Code,
		Message:    msg,
		Underlying: err,
	}
}
