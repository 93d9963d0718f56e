package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/adapter"
	"github.com/Cyclone1070/oaimcp/internal/config"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// Capabilities is the set of upstream operations the tools dispatch to.
// *adapter.Adapter implements it.
type Capabilities interface {
	ProviderName() string
	Generate(ctx context.Context, in adapter.GenerateInput) (models.PlainText, error)
	Search(ctx context.Context, in adapter.SearchInput) (models.SearchResult, error)
	Reason(ctx context.Context, in adapter.ReasonInput) (models.ReasoningResult, error)
	ExecuteCode(ctx context.Context, in adapter.ExecuteCodeInput) (models.CodeExecutionResult, error)
	FetchURL(ctx context.Context, in adapter.FetchURLInput) (models.SearchResult, error)
	UploadFile(ctx context.Context, in adapter.UploadFileInput) (models.FileUploadResult, error)
	AskAboutFile(ctx context.Context, in adapter.AskAboutFileInput) (models.FileUploadResult, error)
	GenerateImage(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error)
	EditImage(ctx context.Context, in adapter.ImageInput) (models.MediaResult, error)
	AnalyzeImage(ctx context.Context, in adapter.AnalyzeImageInput) (models.PlainText, error)
	SynthesizeSpeech(ctx context.Context, in adapter.SpeechInput) (models.AudioResult, error)
	Transcribe(ctx context.Context, in adapter.TranscribeInput) (models.PlainText, error)
}

// typedTool binds a name and an argument struct to a handler.
type typedTool[A any] struct {
	decl Declaration
	run  func(ctx context.Context, args *A) (Reply, error)
}

func newTool[A any](name, description string, run func(ctx context.Context, args *A) (Reply, error)) *typedTool[A] {
	return &typedTool[A]{
		decl: Declaration{Name: name, Description: description, InputSchema: reflectSchema(new(A))},
		run:  run,
	}
}

func (t *typedTool[A]) Name() string             { return t.decl.Name }
func (t *typedTool[A]) Declaration() Declaration { return t.decl }
func (t *typedTool[A]) Input() any               { return new(A) }

func (t *typedTool[A]) Execute(ctx context.Context, input any) (Reply, error) {
	args, ok := input.(*A)
	if !ok {
		return Reply{}, fmt.Errorf("tool %s: unexpected input type %T", t.decl.Name, input)
	}
	return t.run(ctx, args)
}

// text adapts a text-returning operation to a reply.
func text[R models.Result](r R, err error) (Reply, error) {
	if err != nil {
		return Reply{}, err
	}
	return textReply(r), nil
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// New builds every tool over caps. Defaults for model arguments come from m.
func New(caps Capabilities, m config.ModelsConfig, media *MediaWriter) []toolImpl {
	return []toolImpl{
		newTool("ask", "Send a prompt to the model and return its answer.",
			func(ctx context.Context, a *AskArgs) (Reply, error) {
				return text(caps.Generate(ctx, adapter.GenerateInput{
					Model: or(a.Model, m.Default), Prompt: a.Prompt, System: a.System,
					Temperature: a.Temperature, MaxOutputTokens: a.MaxOutputTokens,
				}))
			}),

		newTool("search_web", "Answer a query using live web search. Sources are listed after the answer.",
			func(ctx context.Context, a *SearchWebArgs) (Reply, error) {
				return text(caps.Search(ctx, adapter.SearchInput{
					Model: or(a.Model, m.Default), Query: a.Query, ContextSize: a.ContextSize,
				}))
			}),

		newTool("reason", "Solve a hard problem with extended reasoning. Slow; use for math, planning and analysis.",
			func(ctx context.Context, a *ReasonArgs) (Reply, error) {
				return text(caps.Reason(ctx, adapter.ReasonInput{
					Model: or(a.Model, m.Reasoning), Prompt: a.Prompt, System: a.System, Effort: a.Effort,
				}))
			}),

		newTool("execute_code", "Solve a task by running Python in a sandbox. Returns the answer, the code and its output.",
			func(ctx context.Context, a *ExecuteCodeArgs) (Reply, error) {
				return text(caps.ExecuteCode(ctx, adapter.ExecuteCodeInput{
					Model: or(a.Model, m.Default), Task: a.Task,
				}))
			}),

		newTool("fetch_url", "Read a web page and answer a question about it.",
			func(ctx context.Context, a *FetchURLArgs) (Reply, error) {
				return text(caps.FetchURL(ctx, adapter.FetchURLInput{
					Model: or(a.Model, m.Default), URL: a.URL, Question: a.Question,
				}))
			}),

		newTool("upload_file", "Upload a local file so the model can read it. Returns a file id for ask_about_file; source files are inlined instead.",
			func(ctx context.Context, a *UploadFileArgs) (Reply, error) {
				return text(caps.UploadFile(ctx, adapter.UploadFileInput{
					Model: or(a.Model, m.Default), Path: a.Path, Query: a.Query,
				}))
			}),

		newTool("ask_about_file", "Ask a question about a file previously uploaded with upload_file.",
			func(ctx context.Context, a *AskAboutFileArgs) (Reply, error) {
				return text(caps.AskAboutFile(ctx, adapter.AskAboutFileInput{
					Model: or(a.Model, m.Default), FileID: a.FileID, Question: a.Question,
				}))
			}),

		newTool("generate_image", "Generate images from a prompt. Images are saved to disk and returned inline.",
			func(ctx context.Context, a *GenerateImageArgs) (Reply, error) {
				res, err := caps.GenerateImage(ctx, adapter.ImageInput{
					Model: or(a.Model, m.Image), Prompt: a.Prompt, N: a.N, Size: a.Size,
					Quality: a.Quality, Background: a.Background, OutputFormat: a.OutputFormat,
				})
				if err != nil {
					return Reply{}, err
				}
				return mediaReply(media, res, a.SavePath, "image", a.OutputFormat)
			}),

		newTool("edit_image", "Edit a local image from a prompt, optionally restricted by a mask.",
			func(ctx context.Context, a *EditImageArgs) (Reply, error) {
				res, err := caps.EditImage(ctx, adapter.ImageInput{
					Model: or(a.Model, m.Image), Prompt: a.Prompt, N: a.N, Size: a.Size,
					Quality: a.Quality, OutputFormat: a.OutputFormat,
					ImagePath: a.ImagePath, MaskPath: a.MaskPath,
				})
				if err != nil {
					return Reply{}, err
				}
				return mediaReply(media, res, a.SavePath, "edit", a.OutputFormat)
			}),

		newTool("analyze_image", "Answer a question about a local image.",
			func(ctx context.Context, a *AnalyzeImageArgs) (Reply, error) {
				return text(caps.AnalyzeImage(ctx, adapter.AnalyzeImageInput{
					Model: or(a.Model, m.Default), ImagePath: a.ImagePath, Prompt: a.Prompt,
					Detail: models.ImageDetail(a.Detail),
				}))
			}),

		newTool("describe_image", "Quickly describe a local image at low detail.",
			func(ctx context.Context, a *DescribeImageArgs) (Reply, error) {
				return text(caps.AnalyzeImage(ctx, adapter.AnalyzeImageInput{
					Model: or(a.Model, m.Default), ImagePath: a.ImagePath, Prompt: a.Prompt, Light: true,
				}))
			}),

		newTool("text_to_speech", "Convert text to speech. The audio file is saved to disk.",
			func(ctx context.Context, a *TextToSpeechArgs) (Reply, error) {
				res, err := caps.SynthesizeSpeech(ctx, adapter.SpeechInput{
					Model: or(a.Model, m.Speech), Text: a.Text, Voice: a.Voice,
					Instructions: a.Instructions, Speed: a.Speed, Format: a.Format,
				})
				if err != nil {
					return Reply{}, err
				}
				return audioReply(media, res, a.SavePath)
			}),

		newTool("transcribe_audio", "Transcribe a local audio file to text.",
			func(ctx context.Context, a *TranscribeAudioArgs) (Reply, error) {
				return text(caps.Transcribe(ctx, adapter.TranscribeInput{
					Model: or(a.Model, m.Transcription), AudioPath: a.AudioPath,
					Language: a.Language, Prompt: a.Prompt,
				}))
			}),

		newTool("list_models", "List the models each tool uses by default.",
			func(ctx context.Context, a *ListModelsArgs) (Reply, error) {
				return TextReply(listModels(caps.ProviderName(), m)), nil
			}),
	}
}

func listModels(provider string, m config.ModelsConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Provider: %s\n", provider)
	fmt.Fprintf(&sb, "- default (ask, search_web, execute_code, fetch_url, files, vision): %s\n", m.Default)
	fmt.Fprintf(&sb, "- reasoning (reason): %s\n", m.Reasoning)
	fmt.Fprintf(&sb, "- image (generate_image, edit_image): %s\n", m.Image)
	fmt.Fprintf(&sb, "- speech (text_to_speech): %s\n", m.Speech)
	fmt.Fprintf(&sb, "- transcription (transcribe_audio): %s", m.Transcription)
	return sb.String()
}
