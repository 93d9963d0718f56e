package openai

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// toResponseParams converts a provider-neutral request to Responses API params.
// Blocks keep their order; activations become tools, includes or reasoning settings.
func toResponseParams(req *models.UpstreamRequest) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model: req.Model,
	}

	input := make(responses.ResponseInputParam, 0, len(req.Blocks))
	for _, block := range req.Blocks {
		role := responses.EasyInputMessageRoleUser
		if block.Role == models.RoleSystem {
			role = responses.EasyInputMessageRoleSystem
		}
		input = append(input, responses.ResponseInputItemUnionParam{
			OfMessage: &responses.EasyInputMessageParam{
				Role: role,
				Content: responses.EasyInputMessageContentUnionParam{
					OfInputItemContentList: toInputContent(block.Parts),
				},
			},
		})
	}
	params.Input = responses.ResponseNewParamsInputUnion{OfInputItemList: input}

	for _, act := range req.Activations {
		switch a := act.(type) {
		case models.WebSearch:
			tool := &responses.WebSearchToolParam{Type: responses.WebSearchToolTypeWebSearchPreview}
			if a.ContextSize != "" {
				tool.SearchContextSize = responses.WebSearchToolSearchContextSize(a.ContextSize)
			}
			params.Tools = append(params.Tools, responses.ToolUnionParam{OfWebSearchPreview: tool})
		case models.URLContext:
			params.Tools = append(params.Tools, responses.ToolUnionParam{
				OfWebSearchPreview: &responses.WebSearchToolParam{Type: responses.WebSearchToolTypeWebSearchPreview},
			})
		case models.CodeExecution:
			params.Tools = append(params.Tools, responses.ToolUnionParam{
				OfCodeInterpreter: &responses.ToolCodeInterpreterParam{
					Container: responses.ToolCodeInterpreterContainerUnionParam{
						OfCodeInterpreterContainerAuto: &responses.ToolCodeInterpreterContainerCodeInterpreterContainerAutoParam{},
					},
				},
			})
			params.Include = append(params.Include, responses.ResponseIncludableCodeInterpreterCallOutputs)
		case models.Reasoning:
			params.Reasoning = shared.ReasoningParam{
				Effort:  shared.ReasoningEffort(a.Effort),
				Summary: shared.ReasoningSummaryAuto,
			}
		}
	}

	if req.Temperature != nil {
		params.Temperature = oai.Float(*req.Temperature)
	}
	if req.MaxOutputTokens != nil {
		params.MaxOutputTokens = oai.Int(int64(*req.MaxOutputTokens))
	}

	return params
}

// toInputContent converts content parts to Responses input content.
func toInputContent(parts []models.ContentPart) responses.ResponseInputMessageContentListParam {
	content := make(responses.ResponseInputMessageContentListParam, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case models.TextPart:
			content = append(content, responses.ResponseInputContentUnionParam{
				OfInputText: &responses.ResponseInputTextParam{Text: p.Text},
			})
		case models.ImagePart:
			detail := p.Detail
			if detail == "" {
				detail = models.ImageDetailAuto
			}
			content = append(content, responses.ResponseInputContentUnionParam{
				OfInputImage: &responses.ResponseInputImageParam{
					Detail:   responses.ResponseInputImageDetail(detail),
					ImageURL: oai.String(dataURL(p.MIMEType, p.Data)),
				},
			})
		case models.FileRefPart:
			content = append(content, responses.ResponseInputContentUnionParam{
				OfInputFile: &responses.ResponseInputFileParam{FileID: oai.String(p.FileID)},
			})
		}
	}
	return content
}

func dataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// fromResponse converts the SDK output union into provider-neutral output items.
func fromResponse(resp *responses.Response) *models.UpstreamResponse {
	out := &models.UpstreamResponse{Items: make([]models.OutputItem, 0, len(resp.Output))}

	for _, item := range resp.Output {
		switch v := item.AsAny().(type) {
		case responses.ResponseOutputMessage:
			out.Items = append(out.Items, fromOutputMessage(v))
		case responses.ResponseFunctionWebSearch:
			out.Items = append(out.Items, models.WebSearchCallItem{ID: v.ID, Status: string(v.Status)})
		case responses.ResponseReasoningItem:
			summary := make([]string, 0, len(v.Summary))
			for _, s := range v.Summary {
				summary = append(summary, s.Text)
			}
			out.Items = append(out.Items, models.ReasoningItem{Summary: summary})
		case responses.ResponseCodeInterpreterToolCall:
			call := models.CodeInterpreterCallItem{Code: v.Code}
			for _, o := range v.Outputs {
				call.Outputs = append(call.Outputs, models.CodeOutput{
					Kind: models.CodeOutputKind(o.Type),
					Logs: o.Logs,
					URL:  o.URL,
				})
			}
			out.Items = append(out.Items, call)
		default:
			out.Items = append(out.Items, models.UnknownItem{Type: item.Type})
		}
	}

	return out
}

func fromOutputMessage(msg responses.ResponseOutputMessage) models.MessageItem {
	item := models.MessageItem{Parts: make([]models.MessagePart, 0, len(msg.Content))}
	for _, c := range msg.Content {
		switch c.Type {
		case "output_text":
			text := models.OutputText{Text: c.Text}
			for _, a := range c.Annotations {
				text.Annotations = append(text.Annotations, models.Annotation{
					Kind:  models.AnnotationKind(a.Type),
					Title: a.Title,
					URL:   a.URL,
				})
			}
			item.Parts = append(item.Parts, text)
		case "refusal":
			item.Parts = append(item.Parts, models.Refusal{Text: c.Refusal})
		}
	}
	return item
}

// fromImagesResponse decodes every base64 payload in resp.
func fromImagesResponse(resp *oai.ImagesResponse) ([]models.GeneratedImage, error) {
	images := make([]models.GeneratedImage, 0, len(resp.Data))
	for i, img := range resp.Data {
		if img.B64JSON == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("decode image %d: %w", i, err)
		}
		images = append(images, models.GeneratedImage{Data: data, RevisedPrompt: img.RevisedPrompt})
	}
	return images, nil
}

// usesURLResponses reports whether model returns image URLs unless asked for base64.
func usesURLResponses(model string) bool {
	return strings.HasPrefix(model, "dall-e")
}

// mapOpenAIError maps OpenAI API errors to provider errors.
// Transport errors pass through unchanged so connection failures stay inspectable.
func mapOpenAIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if apiErr.Code != "" && !strings.Contains(msg, apiErr.Code) {
			msg = fmt.Sprintf("%s (%s)", msg, apiErr.Code)
		}
		code := models.CodeForStatus(apiErr.StatusCode)
		if apiErr.Code == "content_policy_violation" {
			code = models.ErrorCodeContentBlocked
		}
		return &models.ProviderError{
			Code:       code,
			Status:     apiErr.StatusCode,
			Message:    msg,
			Underlying: err,
		}
	}

	return err
}
