package gemini

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"google.golang.org/genai"
)

// transcribePrompt is sent alongside inline audio when no prompt is given.
const transcribePrompt = "Transcribe this audio verbatim. Reply with the transcript only."

// GeminiProvider implements provider.Provider for Google Gemini.
// Only text, vision, search, code execution and transcription are served;
// the remaining operations return models.ErrUnsupportedCapability.
type GeminiProvider struct {
	client GeminiClient
}

// New creates a new GeminiProvider with the given client.
func New(client GeminiClient) *GeminiProvider {
	return &GeminiProvider{client: client}
}

// Name returns "gemini".
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Respond sends a GenerateContent request and converts the candidate.
func (p *GeminiProvider) Respond(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error) {
	contents, config, err := toGeminiRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}
	return fromGeminiResponse(resp)
}

// UploadFile is not supported; callers fall back to inline content.
func (p *GeminiProvider) UploadFile(ctx context.Context, filename string, data []byte) (*models.UploadedFile, error) {
	return nil, models.ErrUnsupportedCapability
}

// GenerateImages is not supported.
func (p *GeminiProvider) GenerateImages(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	return nil, models.ErrUnsupportedCapability
}

// EditImage is not supported.
func (p *GeminiProvider) EditImage(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error) {
	return nil, models.ErrUnsupportedCapability
}

// SynthesizeSpeech is not supported.
func (p *GeminiProvider) SynthesizeSpeech(ctx context.Context, req *models.SpeechRequest) ([]byte, error) {
	return nil, models.ErrUnsupportedCapability
}

// Transcribe sends the audio inline and returns the model's transcript.
func (p *GeminiProvider) Transcribe(ctx context.Context, req *models.TranscriptionRequest) (string, error) {
	prompt := transcribePrompt
	if req.Prompt != "" {
		prompt = transcribePrompt + "\nContext: " + req.Prompt
	}
	if req.Language != "" {
		prompt += "\nThe audio language is " + req.Language + "."
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(req.Audio, audioMIMEType(req.Filename)),
		},
	}}

	resp, err := p.client.GenerateContent(ctx, req.Model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", mapGeminiError(err)
	}
	out, err := fromGeminiResponse(resp)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range out.Items {
		if msg, ok := item.(models.MessageItem); ok {
			for _, part := range msg.Parts {
				if t, ok := part.(models.OutputText); ok {
					sb.WriteString(t.Text)
				}
			}
		}
	}
	if sb.Len() == 0 {
		return "", models.ErrEmptyResponse
	}
	return strings.TrimSpace(sb.String()), nil
}

func audioMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mp3", ".mpga", ".mpeg":
		return "audio/mp3"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".webm":
		return "audio/webm"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
