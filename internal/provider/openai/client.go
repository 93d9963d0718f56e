package openai

import (
	"context"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// OpenAIClient defines the interface for interacting with the OpenAI API.
// This abstraction allows for easier testing.
type OpenAIClient interface {
	// NewResponse calls the Responses API
	NewResponse(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error)

	// UploadFile stores a file for later reference by id
	UploadFile(ctx context.Context, params oai.FileNewParams) (*oai.FileObject, error)

	// GenerateImage calls the image generation endpoint
	GenerateImage(ctx context.Context, params oai.ImageGenerateParams) (*oai.ImagesResponse, error)

	// EditImage calls the image edit endpoint
	EditImage(ctx context.Context, params oai.ImageEditParams) (*oai.ImagesResponse, error)

	// NewSpeech calls the speech endpoint; the caller closes the body
	NewSpeech(ctx context.Context, params oai.AudioSpeechNewParams) (*http.Response, error)

	// NewTranscription calls the transcription endpoint
	NewTranscription(ctx context.Context, params oai.AudioTranscriptionNewParams) (*oai.Transcription, error)
}

// RealOpenAIClient wraps the official SDK client to satisfy OpenAIClient.
type RealOpenAIClient struct {
	client oai.Client
}

// NewRealOpenAIClient builds an SDK client for apiKey.
// SDK-level retries are disabled; failures surface after one attempt.
func NewRealOpenAIClient(apiKey, baseURL string) *RealOpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &RealOpenAIClient{client: oai.NewClient(opts...)}
}

func (c *RealOpenAIClient) NewResponse(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error) {
	return c.client.Responses.New(ctx, params)
}

func (c *RealOpenAIClient) UploadFile(ctx context.Context, params oai.FileNewParams) (*oai.FileObject, error) {
	return c.client.Files.New(ctx, params)
}

func (c *RealOpenAIClient) GenerateImage(ctx context.Context, params oai.ImageGenerateParams) (*oai.ImagesResponse, error) {
	return c.client.Images.Generate(ctx, params)
}

func (c *RealOpenAIClient) EditImage(ctx context.Context, params oai.ImageEditParams) (*oai.ImagesResponse, error) {
	return c.client.Images.Edit(ctx, params)
}

func (c *RealOpenAIClient) NewSpeech(ctx context.Context, params oai.AudioSpeechNewParams) (*http.Response, error) {
	return c.client.Audio.Speech.New(ctx, params)
}

func (c *RealOpenAIClient) NewTranscription(ctx context.Context, params oai.AudioTranscriptionNewParams) (*oai.Transcription, error) {
	return c.client.Audio.Transcriptions.New(ctx, params)
}
