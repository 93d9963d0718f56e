package provider

import (
	"context"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// Provider is the transport to one upstream model service.
// Implementations translate the provider-neutral request shapes into SDK calls
// and SDK errors into *models.ProviderError. They perform no retries.
// Operations a backend cannot serve return models.ErrUnsupportedCapability.
type Provider interface {
	// Name returns the provider identifier used in logs and metrics.
	Name() string

	// Respond runs a Responses-style call and returns its ordered output items.
	Respond(ctx context.Context, req *models.UpstreamRequest) (*models.UpstreamResponse, error)

	// UploadFile stores a file provider-side and returns a reusable handle.
	UploadFile(ctx context.Context, filename string, data []byte) (*models.UploadedFile, error)

	// GenerateImages creates images from a prompt.
	GenerateImages(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error)

	// EditImage edits req.Image, optionally restricted by req.Mask.
	EditImage(ctx context.Context, req *models.ImageRequest) ([]models.GeneratedImage, error)

	// SynthesizeSpeech returns encoded audio for req.Input.
	SynthesizeSpeech(ctx context.Context, req *models.SpeechRequest) ([]byte, error)

	// Transcribe returns the text spoken in req.Audio.
	Transcribe(ctx context.Context, req *models.TranscriptionRequest) (string, error)
}
