package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(p *mockProvider, fs afero.Fs) *Adapter {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return New(p, fs, Options{BaseTimeout: time.Second})
}

func TestGenerate_SystemBlockFirst(t *testing.T) {
	var got *models.UpstreamRequest
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		got = req
		return textReply("4"), nil
	}}

	res, err := newTestAdapter(p, nil).Generate(context.Background(), GenerateInput{
		Model: "gpt-4.1", Prompt: "2+2?", System: "Answer with a number.",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PlainText{Text: "4"}, res)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, models.RoleSystem, got.Blocks[0].Role)
	assert.Equal(t, models.RoleUser, got.Blocks[1].Role)
	assert.Equal(t, []models.ContentPart{models.TextPart{Text: "2+2?"}}, got.Blocks[1].Parts)
	assert.Empty(t, got.Activations)
}

func TestGenerate_NoSystem_SingleUserBlock(t *testing.T) {
	var got *models.UpstreamRequest
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		got = req
		return textReply("hi"), nil
	}}

	_, err := newTestAdapter(p, nil).Generate(context.Background(), GenerateInput{Prompt: "hello"})

	require.NoError(t, err)
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, models.RoleUser, got.Blocks[0].Role)
}

func TestSearch_ActivatesWebSearchAndDedupesCitations(t *testing.T) {
	var got *models.UpstreamRequest
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		got = req
		return &models.UpstreamResponse{Items: []models.OutputItem{
			models.WebSearchCallItem{ID: "ws", Status: "completed"},
			models.MessageItem{Parts: []models.MessagePart{models.OutputText{
				Text: "Go 1.25 shipped.",
				Annotations: []models.Annotation{
					{Kind: models.AnnotationURLCitation, Title: "Go blog", URL: "https://go.dev/blog"},
					{Kind: models.AnnotationURLCitation, Title: "dup", URL: "https://go.dev/blog"},
				},
			}}},
		}}, nil
	}}

	res, err := newTestAdapter(p, nil).Search(context.Background(), SearchInput{Query: "latest go", ContextSize: "medium"})

	require.NoError(t, err)
	assert.Equal(t, []models.Activation{models.WebSearch{ContextSize: "medium"}}, got.Activations)
	assert.Equal(t, "Go 1.25 shipped.", res.Text)
	assert.Equal(t, []models.Citation{{Title: "Go blog", URL: "https://go.dev/blog"}}, res.Citations)
}

func TestReason_CarriesEffortAndTrace(t *testing.T) {
	var got *models.UpstreamRequest
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		got = req
		return &models.UpstreamResponse{Items: []models.OutputItem{
			models.ReasoningItem{Summary: []string{"step one. ", "step two."}},
			models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: "done"}}},
		}}, nil
	}}

	res, err := newTestAdapter(p, nil).Reason(context.Background(), ReasonInput{Prompt: "p", Effort: "high"})

	require.NoError(t, err)
	assert.Equal(t, []models.Activation{models.Reasoning{Effort: "high"}}, got.Activations)
	assert.Equal(t, models.ReasoningResult{Text: "done", Trace: "step one. step two."}, res)
}

func TestExecuteCode_ActivatesSandbox(t *testing.T) {
	var got *models.UpstreamRequest
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		got = req
		return &models.UpstreamResponse{Items: []models.OutputItem{
			models.CodeInterpreterCallItem{Code: "print(1)", Outputs: []models.CodeOutput{{Kind: models.CodeOutputLogs, Logs: "1"}}},
			models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: "It printed 1."}}},
		}}, nil
	}}

	res, err := newTestAdapter(p, nil).ExecuteCode(context.Background(), ExecuteCodeInput{Task: "print one"})

	require.NoError(t, err)
	assert.Equal(t, []models.Activation{models.CodeExecution{}}, got.Activations)
	assert.Equal(t, models.RoleSystem, got.Blocks[0].Role)
	assert.Equal(t, models.CodeExecutionResult{Text: "It printed 1.", Code: "print(1)", Output: "1"}, res)
}

func TestFetchURL(t *testing.T) {
	t.Run("rejects non-http scheme locally", func(t *testing.T) {
		called := false
		p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
			called = true
			return textReply(""), nil
		}}

		_, err := newTestAdapter(p, nil).FetchURL(context.Background(), FetchURLInput{URL: "file:///etc/passwd"})

		assert.ErrorIs(t, err, ErrInvalidURL)
		assert.True(t, IsInvalidInput(err))
		assert.False(t, called)
	})

	t.Run("activates url context", func(t *testing.T) {
		var got *models.UpstreamRequest
		p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
			got = req
			return textReply("A page about Go."), nil
		}}

		res, err := newTestAdapter(p, nil).FetchURL(context.Background(), FetchURLInput{URL: "https://go.dev", Question: "What is it?"})

		require.NoError(t, err)
		assert.Equal(t, "A page about Go.", res.Text)
		assert.Equal(t, []models.Activation{models.URLContext{}}, got.Activations)
		text := got.Blocks[0].Parts[0].(models.TextPart).Text
		assert.Contains(t, text, "https://go.dev")
		assert.Contains(t, text, "What is it?")
	})
}

func TestRace_TimeoutReturnsSentinel(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		<-release
		return textReply("late"), nil
	}}
	a := New(p, afero.NewMemMapFs(), Options{BaseTimeout: 10 * time.Millisecond})

	start := time.Now()
	_, err := a.Generate(context.Background(), GenerateInput{Prompt: "slow"})

	assert.ErrorIs(t, err, models.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRace_ReasoningGetsLongerDeadline(t *testing.T) {
	p := &mockProvider{RespondFunc: func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
		time.Sleep(60 * time.Millisecond)
		return textReply("ok"), nil
	}}
	// 30ms base: generation (1×) times out, reasoning (5× = 150ms) completes.
	a := New(p, afero.NewMemMapFs(), Options{BaseTimeout: 30 * time.Millisecond})

	_, err := a.Generate(context.Background(), GenerateInput{Prompt: "p"})
	assert.ErrorIs(t, err, models.ErrTimeout)

	res, err := a.Reason(context.Background(), ReasonInput{Prompt: "p", Effort: "low"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text)
	assert.Equal(t, 150*time.Millisecond, provider.Deadline(30*time.Millisecond, provider.ClassReasoning))
}
