package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// GenerateInput is a plain generation request.
type GenerateInput struct {
	Model           string
	Prompt          string
	System          string
	Temperature     *float64
	MaxOutputTokens *int
}

// Generate runs plain generation.
func (a *Adapter) Generate(ctx context.Context, in GenerateInput) (models.PlainText, error) {
	ex, err := a.respond(ctx, provider.ClassGeneration, &models.UpstreamRequest{
		Model:           in.Model,
		Blocks:          blocks(in.System, models.TextPart{Text: in.Prompt}),
		Temperature:     in.Temperature,
		MaxOutputTokens: in.MaxOutputTokens,
	})
	if err != nil {
		return models.PlainText{}, err
	}
	return ex.PlainText(), nil
}

// SearchInput is a web-search generation request.
type SearchInput struct {
	Model       string
	Query       string
	ContextSize string
}

// Search answers a query with web search enabled.
func (a *Adapter) Search(ctx context.Context, in SearchInput) (models.SearchResult, error) {
	ex, err := a.respond(ctx, provider.ClassSearch, &models.UpstreamRequest{
		Model:       in.Model,
		Blocks:      blocks("", models.TextPart{Text: in.Query}),
		Activations: []models.Activation{models.WebSearch{ContextSize: in.ContextSize}},
	})
	if err != nil {
		return models.SearchResult{}, err
	}
	return ex.SearchResult(), nil
}

// ReasonInput is an extended reasoning request.
type ReasonInput struct {
	Model  string
	Prompt string
	System string
	Effort string
}

// Reason runs generation with extended reasoning at the requested effort.
func (a *Adapter) Reason(ctx context.Context, in ReasonInput) (models.ReasoningResult, error) {
	ex, err := a.respond(ctx, provider.ClassReasoning, &models.UpstreamRequest{
		Model:       in.Model,
		Blocks:      blocks(in.System, models.TextPart{Text: in.Prompt}),
		Activations: []models.Activation{models.Reasoning{Effort: in.Effort}},
	})
	if err != nil {
		return models.ReasoningResult{}, err
	}
	return ex.ReasoningResult(), nil
}

// ExecuteCodeInput is a sandboxed code execution request.
type ExecuteCodeInput struct {
	Model string
	Task  string
}

const executeCodeInstruction = "Solve the task by writing and running Python code in the code interpreter. " +
	"After running it, state the result plainly."

// ExecuteCode lets the model solve a task in the provider's code sandbox.
func (a *Adapter) ExecuteCode(ctx context.Context, in ExecuteCodeInput) (models.CodeExecutionResult, error) {
	ex, err := a.respond(ctx, provider.ClassCodeExecution, &models.UpstreamRequest{
		Model:       in.Model,
		Blocks:      blocks(executeCodeInstruction, models.TextPart{Text: in.Task}),
		Activations: []models.Activation{models.CodeExecution{}},
	})
	if err != nil {
		return models.CodeExecutionResult{}, err
	}
	return ex.CodeExecutionResult(), nil
}

// FetchURLInput asks about the content of a web page.
type FetchURLInput struct {
	Model    string
	URL      string
	Question string
}

// FetchURL retrieves a page upstream and answers a question about it.
func (a *Adapter) FetchURL(ctx context.Context, in FetchURLInput) (models.SearchResult, error) {
	if err := checkURL(in.URL); err != nil {
		return models.SearchResult{}, err
	}

	question := in.Question
	if question == "" {
		question = "Summarize the main content of the page."
	}
	prompt := fmt.Sprintf("Retrieve the page at %s and answer using its content.\n\n%s", in.URL, question)

	ex, err := a.respond(ctx, provider.ClassURLFetch, &models.UpstreamRequest{
		Model:       in.Model,
		Blocks:      blocks("", models.TextPart{Text: prompt}),
		Activations: []models.Activation{models.URLContext{}},
	})
	if err != nil {
		return models.SearchResult{}, err
	}
	return ex.SearchResult(), nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &InputError{Cause: fmt.Errorf("%w: %q", ErrInvalidURL, raw)}
	}
	return nil
}
