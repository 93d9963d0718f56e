package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// imageMIMETypes lists the image types accepted as vision or edit input.
var imageMIMETypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// editableImageTypes is the subset of imageMIMETypes the edit endpoint accepts.
var editableImageTypes = map[string]bool{"png": true, "jpg": true, "jpeg": true, "webp": true}

// ImageMIMEType returns the MIME type for an output format, defaulting to PNG.
func ImageMIMEType(format string) string {
	if t, ok := imageMIMETypes[format]; ok {
		return t
	}
	return "image/png"
}

// ImageInput is an image generation or edit request.
type ImageInput struct {
	Model        string
	Prompt       string
	N            int
	Size         string
	Quality      string
	Background   string
	OutputFormat string

	// Edit only
	ImagePath string
	MaskPath  string
}

// GenerateImage creates images from a prompt. A result with zero images is
// returned as-is; callers decide how to report it.
func (a *Adapter) GenerateImage(ctx context.Context, in ImageInput) (models.MediaResult, error) {
	req := imageRequest(in)
	images, err := race(ctx, a, provider.ClassImage, in.Model, func(ctx context.Context) ([]models.GeneratedImage, error) {
		return a.provider.GenerateImages(ctx, req)
	})
	if err != nil {
		return models.MediaResult{}, err
	}
	return models.MediaResult{Images: images, MIMEType: ImageMIMEType(in.OutputFormat)}, nil
}

// EditImage edits a local image, optionally restricted by a mask.
func (a *Adapter) EditImage(ctx context.Context, in ImageInput) (models.MediaResult, error) {
	req := imageRequest(in)

	var err error
	if req.Image, err = a.readImage(in.ImagePath, editableImageTypes); err != nil {
		return models.MediaResult{}, err
	}
	req.ImageName = filepath.Base(in.ImagePath)
	if in.MaskPath != "" {
		if req.Mask, err = a.readImage(in.MaskPath, map[string]bool{"png": true}); err != nil {
			return models.MediaResult{}, err
		}
		req.MaskName = filepath.Base(in.MaskPath)
	}

	images, err := race(ctx, a, provider.ClassImage, in.Model, func(ctx context.Context) ([]models.GeneratedImage, error) {
		return a.provider.EditImage(ctx, req)
	})
	if err != nil {
		return models.MediaResult{}, err
	}
	return models.MediaResult{Images: images, MIMEType: ImageMIMEType(in.OutputFormat)}, nil
}

func imageRequest(in ImageInput) *models.ImageRequest {
	return &models.ImageRequest{
		Model:        in.Model,
		Prompt:       in.Prompt,
		N:            in.N,
		Size:         in.Size,
		Quality:      in.Quality,
		Background:   in.Background,
		OutputFormat: in.OutputFormat,
	}
}

// readImage reads path after checking its extension against allowed.
func (a *Adapter) readImage(path string, allowed map[string]bool) ([]byte, error) {
	ext := extension(path)
	if !allowed[ext] {
		return nil, &InputError{Path: path, Cause: fmt.Errorf("%w: %q", ErrUnsupportedImageType, ext)}
	}
	return a.readFile(path)
}

// AnalyzeImageInput is a vision request.
type AnalyzeImageInput struct {
	Model     string
	ImagePath string
	Prompt    string
	Detail    models.ImageDetail
	// Light selects the fast path: low detail and the 1× deadline.
	Light bool
}

const describeImagePrompt = "Describe this image concisely."

// AnalyzeImage answers a prompt about a local image.
func (a *Adapter) AnalyzeImage(ctx context.Context, in AnalyzeImageInput) (models.PlainText, error) {
	data, err := a.readImage(in.ImagePath, allImageTypes())
	if err != nil {
		return models.PlainText{}, err
	}

	class, detail, prompt := provider.ClassVision, in.Detail, in.Prompt
	if in.Light {
		class, detail = provider.ClassVisionLight, models.ImageDetailLow
	}
	if prompt == "" {
		prompt = describeImagePrompt
	}

	ex, err := a.respond(ctx, class, &models.UpstreamRequest{
		Model: in.Model,
		Blocks: blocks("",
			models.TextPart{Text: prompt},
			models.ImagePart{Data: data, MIMEType: imageMIMETypes[extension(in.ImagePath)], Detail: detail},
		),
	})
	if err != nil {
		return models.PlainText{}, err
	}
	return ex.PlainText(), nil
}

func allImageTypes() map[string]bool {
	out := make(map[string]bool, len(imageMIMETypes))
	for ext := range imageMIMETypes {
		out[ext] = true
	}
	return out
}

// SpeechInput is a text-to-speech request.
type SpeechInput struct {
	Model        string
	Text         string
	Voice        string
	Instructions string
	Speed        float64
	Format       string
}

// SynthesizeSpeech turns text into encoded audio.
func (a *Adapter) SynthesizeSpeech(ctx context.Context, in SpeechInput) (models.AudioResult, error) {
	req := &models.SpeechRequest{
		Model:        in.Model,
		Input:        in.Text,
		Voice:        in.Voice,
		Instructions: in.Instructions,
		Speed:        in.Speed,
		Format:       in.Format,
	}
	data, err := race(ctx, a, provider.ClassSpeech, in.Model, func(ctx context.Context) ([]byte, error) {
		return a.provider.SynthesizeSpeech(ctx, req)
	})
	if err != nil {
		return models.AudioResult{}, err
	}
	return models.AudioResult{Data: data, Format: in.Format}, nil
}

// TranscribeInput is a speech-to-text request.
type TranscribeInput struct {
	Model     string
	AudioPath string
	Language  string
	Prompt    string
}

// Transcribe returns the text spoken in a local audio file.
func (a *Adapter) Transcribe(ctx context.Context, in TranscribeInput) (models.PlainText, error) {
	data, err := a.readFile(in.AudioPath)
	if err != nil {
		return models.PlainText{}, err
	}
	req := &models.TranscriptionRequest{
		Model:    in.Model,
		Audio:    data,
		Filename: filepath.Base(in.AudioPath),
		Language: in.Language,
		Prompt:   in.Prompt,
	}

	text, err := race(ctx, a, provider.ClassTranscription, in.Model, func(ctx context.Context) (string, error) {
		return a.provider.Transcribe(ctx, req)
	})
	if err != nil {
		return models.PlainText{}, err
	}
	return models.PlainText{Text: text}, nil
}
