package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	oai "github.com/openai/openai-go"
)

// OpenAIProvider implements provider.Provider on top of the OpenAI API.
type OpenAIProvider struct {
	client OpenAIClient
}

// New creates a new OpenAIProvider with the given client.
func New(client OpenAIClient) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

// Name returns "openai".
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Respond sends a Responses API request and converts the output items.
func (p *OpenAIProvider) Respond(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
	resp, err := p.client.NewResponse(ctx, toResponseParams(req))
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	return fromResponse(resp), nil
}

// UploadFile stores data with the user_data purpose.
func (p *OpenAIProvider) UploadFile(ctx context.Context, filename string, data []byte) (*models.UploadedFile, error) {
	f, err := p.client.UploadFile(ctx, oai.FileNewParams{
		File:    oai.File(bytes.NewReader(data), filename, contentType(filename)),
		Purpose: oai.FilePurposeUserData,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	name := f.Filename
	if name == "" {
		name = filename
	}
	return &models.UploadedFile{ID: f.ID, Filename: name}, nil
}

// GenerateImages calls the image generation endpoint.
func (p *OpenAIProvider) GenerateImages(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	params := oai.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  req.Model,
	}
	if req.N > 0 {
		params.N = oai.Int(int64(req.N))
	}
	if req.Size != "" {
		params.Size = oai.ImageGenerateParamsSize(req.Size)
	}
	if req.Quality != "" {
		params.Quality = oai.ImageGenerateParamsQuality(req.Quality)
	}
	if req.Background != "" {
		params.Background = oai.ImageGenerateParamsBackground(req.Background)
	}
	if req.OutputFormat != "" {
		params.OutputFormat = oai.ImageGenerateParamsOutputFormat(req.OutputFormat)
	}
	if usesURLResponses(req.Model) {
		params.ResponseFormat = oai.ImageGenerateParamsResponseFormatB64JSON
	}

	resp, err := p.client.GenerateImage(ctx, params)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	return fromImagesResponse(resp)
}

// EditImage calls the image edit endpoint with an optional mask.
func (p *OpenAIProvider) EditImage(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	params := oai.ImageEditParams{
		Prompt: req.Prompt,
		Model:  req.Model,
		Image: oai.ImageEditParamsImageUnion{
			OfFile: oai.File(bytes.NewReader(req.Image), req.ImageName, contentType(req.ImageName)),
		},
	}
	if len(req.Mask) > 0 {
		params.Mask = oai.File(bytes.NewReader(req.Mask), req.MaskName, contentType(req.MaskName))
	}
	if req.N > 0 {
		params.N = oai.Int(int64(req.N))
	}
	if req.Size != "" {
		params.Size = oai.ImageEditParamsSize(req.Size)
	}
	if req.Quality != "" {
		params.Quality = oai.ImageEditParamsQuality(req.Quality)
	}
	if req.Background != "" {
		params.Background = oai.ImageEditParamsBackground(req.Background)
	}
	if req.OutputFormat != "" {
		params.OutputFormat = oai.ImageEditParamsOutputFormat(req.OutputFormat)
	}
	if usesURLResponses(req.Model) {
		params.ResponseFormat = oai.ImageEditParamsResponseFormatB64JSON
	}

	resp, err := p.client.EditImage(ctx, params)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	return fromImagesResponse(resp)
}

// SynthesizeSpeech returns the encoded audio body.
func (p *OpenAIProvider) SynthesizeSpeech(ctx context.Context, req *models.SpeechRequest) ([]byte, error) {
	params := oai.AudioSpeechNewParams{
		Input: req.Input,
		Model: req.Model,
		Voice: oai.AudioSpeechNewParamsVoice(req.Voice),
	}
	if req.Instructions != "" {
		params.Instructions = oai.String(req.Instructions)
	}
	if req.Speed > 0 {
		params.Speed = oai.Float(req.Speed)
	}
	if req.Format != "" {
		params.ResponseFormat = oai.AudioSpeechNewParamsResponseFormat(req.Format)
	}

	resp, err := p.client.NewSpeech(ctx, params)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech body: %w", err)
	}
	return data, nil
}

// Transcribe returns the transcript text.
func (p *OpenAIProvider) Transcribe(ctx context.Context, req *models.TranscriptionRequest) (string, error) {
	params := oai.AudioTranscriptionNewParams{
		File:  oai.File(bytes.NewReader(req.Audio), req.Filename, contentType(req.Filename)),
		Model: req.Model,
	}
	if req.Language != "" {
		params.Language = oai.String(req.Language)
	}
	if req.Prompt != "" {
		params.Prompt = oai.String(req.Prompt)
	}

	resp, err := p.client.NewTranscription(ctx, params)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	return resp.Text, nil
}

// contentType guesses a MIME type from the file extension.
func contentType(filename string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}
