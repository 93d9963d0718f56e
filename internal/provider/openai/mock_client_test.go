package openai

import (
	"context"
	"errors"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
)

// MockOpenAIClient is a mock implementation of OpenAIClient for testing.
type MockOpenAIClient struct {
	NewResponseFunc      func(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error)
	UploadFileFunc       func(ctx context.Context, params oai.FileNewParams) (*oai.FileObject, error)
	GenerateImageFunc    func(ctx context.Context, params oai.ImageGenerateParams) (*oai.ImagesResponse, error)
	EditImageFunc        func(ctx context.Context, params oai.ImageEditParams) (*oai.ImagesResponse, error)
	NewSpeechFunc        func(ctx context.Context, params oai.AudioSpeechNewParams) (*http.Response, error)
	NewTranscriptionFunc func(ctx context.Context, params oai.AudioTranscriptionNewParams) (*oai.Transcription, error)
}

func (m *MockOpenAIClient) NewResponse(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error) {
	if m.NewResponseFunc != nil {
		return m.NewResponseFunc(ctx, params)
	}
	return nil, errors.New("NewResponseFunc not set")
}

func (m *MockOpenAIClient) UploadFile(ctx context.Context, params oai.FileNewParams) (*oai.FileObject, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, params)
	}
	return nil, errors.New("UploadFileFunc not set")
}

func (m *MockOpenAIClient) GenerateImage(ctx context.Context, params oai.ImageGenerateParams) (*oai.ImagesResponse, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, params)
	}
	return nil, errors.New("GenerateImageFunc not set")
}

func (m *MockOpenAIClient) EditImage(ctx context.Context, params oai.ImageEditParams) (*oai.ImagesResponse, error) {
	if m.EditImageFunc != nil {
		return m.EditImageFunc(ctx, params)
	}
	return nil, errors.New("EditImageFunc not set")
}

func (m *MockOpenAIClient) NewSpeech(ctx context.Context, params oai.AudioSpeechNewParams) (*http.Response, error) {
	if m.NewSpeechFunc != nil {
		return m.NewSpeechFunc(ctx, params)
	}
	return nil, errors.New("NewSpeechFunc not set")
}

func (m *MockOpenAIClient) NewTranscription(ctx context.Context, params oai.AudioTranscriptionNewParams) (*oai.Transcription, error) {
	if m.NewTranscriptionFunc != nil {
		return m.NewTranscriptionFunc(ctx, params)
	}
	return nil, errors.New("NewTranscriptionFunc not set")
}
