package adapter

import (
	"context"
	"errors"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// mockProvider is a mock implementation of provider.Provider for testing.
type mockProvider struct {
	RespondFunc          func(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error)
	UploadFileFunc       func(ctx context.Context, filename string, data []byte) (*models.UploadedFile, error)
	GenerateImagesFunc   func(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error)
	EditImageFunc        func(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error)
	SynthesizeSpeechFunc func(ctx context.Context, req *models.SpeechRequest) ([]byte, error)
	TranscribeFunc       func(ctx context.Context, req *models.TranscriptionRequest) (string, error)
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Respond(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, req)
	}
	return nil, errors.New("RespondFunc not set")
}

func (m *mockProvider) UploadFile(ctx context.Context, filename string, data []byte) (*models.UploadedFile, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, filename, data)
	}
	return nil, errors.New("UploadFileFunc not set")
}

func (m *mockProvider) GenerateImages(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	if m.GenerateImagesFunc != nil {
		return m.GenerateImagesFunc(ctx, req)
	}
	return nil, errors.New("GenerateImagesFunc not set")
}

func (m *mockProvider) EditImage(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	if m.EditImageFunc != nil {
		return m.EditImageFunc(ctx, req)
	}
	return nil, errors.New("EditImageFunc not set")
}

func (m *mockProvider) SynthesizeSpeech(ctx context.Context, req *models.SpeechRequest) ([]byte, error) {
	if m.SynthesizeSpeechFunc != nil {
		return m.SynthesizeSpeechFunc(ctx, req)
	}
	return nil, errors.New("SynthesizeSpeechFunc not set")
}

func (m *mockProvider) Transcribe(ctx context.Context, req *models.TranscriptionRequest) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, req)
	}
	return "", errors.New("TranscribeFunc not set")
}

// textReply is a response holding a single output-text part.
func textReply(text string, annotations ...models.Annotation) *models.UpstreamResponse {
	return &models.UpstreamResponse{Items: []models.OutputItem{
		models.MessageItem{Parts: []models.MessagePart{models.OutputText{Text: text, Annotations: annotations}}},
	}}
}
