package tool

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/adapter"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// mockCapabilities is a mock implementation of Capabilities for testing.
type mockCapabilities struct {
	GenerateFunc         func(ctx context.Context, in adapter.GenerateInput) (models.PlainText, error)
	SearchFunc           func(ctx context.Context, in adapter.SearchInput) (models.SearchResult, error)
	ReasonFunc           func(ctx context.Context, in adapter.ReasonInput) (models.ReasoningResult, error)
	ExecuteCodeFunc      func(ctx context.Context, in adapter.ExecuteCodeInput) (models.CodeExecutionResult, error)
	FetchURLFunc         func(ctx context.Context, in adapter.FetchURLInput) (models.SearchResult, error)
	UploadFileFunc       func(ctx context.Context, in adapter.UploadFileInput) (models.FileUploadResult, error)
	AskAboutFileFunc     func(ctx context.Context, in adapter.AskAboutFileInput) (models.FileUploadResult, error)
	GenerateImageFunc    func(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error)
	EditImageFunc        func(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error)
	AnalyzeImageFunc     func(ctx context.Context, in adapter.AnalyzeImageInput) (models.PlainText, error)
	SynthesizeSpeechFunc func(ctx context.Context, in adapter.SpeechInput) (models.AudioResult, error)
	TranscribeFunc       func(ctx context.Context, in adapter.TranscribeInput) (models.PlainText, error)
}

func (m *mockCapabilities) ProviderName() string { return "mock" }

func (m *mockCapabilities) Generate(ctx context.Context, in adapter.GenerateInput) (models.PlainText, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, in)
	}
	return models.PlainText{}, errors.New("GenerateFunc not set")
}

func (m *mockCapabilities) Search(ctx context.Context, in adapter.SearchInput) (models.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, in)
	}
	return models.SearchResult{}, errors.New("SearchFunc not set")
}

func (m *mockCapabilities) Reason(ctx context.Context, in adapter.ReasonInput) (models.ReasoningResult, error) {
	if m.ReasonFunc != nil {
		return m.ReasonFunc(ctx, in)
	}
	return models.ReasoningResult{}, errors.New("ReasonFunc not set")
}

func (m *mockCapabilities) ExecuteCode(ctx context.Context, in adapter.ExecuteCodeInput) (models.CodeExecutionResult, error) {
	if m.ExecuteCodeFunc != nil {
		return m.ExecuteCodeFunc(ctx, in)
	}
	return models.CodeExecutionResult{}, errors.New("ExecuteCodeFunc not set")
}

func (m *mockCapabilities) FetchURL(ctx context.Context, in adapter.FetchURLInput) (models.SearchResult, error) {
	if m.FetchURLFunc != nil {
		return m.FetchURLFunc(ctx, in)
	}
	return models.SearchResult{}, errors.New("FetchURLFunc not set")
}

func (m *mockCapabilities) UploadFile(ctx context.Context, in adapter.UploadFileInput) (models.FileUploadResult, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, in)
	}
	return models.FileUploadResult{}, errors.New("UploadFileFunc not set")
}

func (m *mockCapabilities) AskAboutFile(ctx context.Context, in adapter.AskAboutFileInput) (models.FileUploadResult, error) {
	if m.AskAboutFileFunc != nil {
		return m.AskAboutFileFunc(ctx, in)
	}
	return models.FileUploadResult{}, errors.New("AskAboutFileFunc not set")
}

func (m *mockCapabilities) GenerateImage(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, in)
	}
	return models.MediaResult{}, errors.New("GenerateImageFunc not set")
}

func (m *mockCapabilities) EditImage(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error) {
	if m.EditImageFunc != nil {
		return m.EditImageFunc(ctx, in)
	}
	return models.MediaResult{}, errors.New("EditImageFunc not set")
}

func (m *mockCapabilities) AnalyzeImage(ctx context.Context, in adapter.AnalyzeImageInput) (models.PlainText, error) {
	if m.AnalyzeImageFunc != nil {
		return m.AnalyzeImageFunc(ctx, in)
	}
	return models.PlainText{}, errors.New("AnalyzeImageFunc not set")
}

func (m *mockCapabilities) SynthesizeSpeech(ctx context.Context, in adapter.SpeechInput) (models.AudioResult, error) {
	if m.SynthesizeSpeechFunc != nil {
		return m.SynthesizeSpeechFunc(ctx, in)
	}
	return models.AudioResult{}, errors.New("SynthesizeSpeechFunc not set")
}

func (m *mockCapabilities) Transcribe(ctx context.Context, in adapter.TranscribeInput) (models.PlainText, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, in)
	}
	return models.PlainText{}, errors.New("TranscribeFunc not set")
}

// observation is one recorded ObserveCall.
type observation struct {
	tool    string
	outcome string
}

// recordingObserver collects every observed call.
type recordingObserver struct {
	mu    sync.Mutex
	calls []observation
}

func (r *recordingObserver) ObserveCall(tool, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, observation{tool: tool, outcome: outcome})
}
