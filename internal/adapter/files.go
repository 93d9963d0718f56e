package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"github.com/spf13/afero"
)

// uploadExtensions are the file types sent through the provider's file store.
// Everything else is inlined as text.
var uploadExtensions = map[string]bool{
	"c": true, "cpp": true, "cs": true, "css": true, "csv": true,
	"doc": true, "docx": true, "epub": true, "gif": true, "htm": true,
	"html": true, "java": true, "jpeg": true, "jpg": true, "js": true,
	"json": true, "markdown": true, "md": true, "odt": true, "pdf": true,
	"php": true, "pkl": true, "png": true, "pptx": true, "py": true,
	"rb": true, "rtf": true, "sh": true, "tar": true, "tex": true,
	"txt": true, "webp": true, "xlsx": true, "xml": true, "zip": true,
}

// Uploadable reports whether files with this name go through provider upload.
func Uploadable(name string) bool {
	return uploadExtensions[extension(name)]
}

// extension returns the lower-cased extension of name without the dot.
func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// readFile reads a local input file, mapping filesystem failures to InputError.
func (a *Adapter) readFile(path string) ([]byte, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &InputError{Path: path, Cause: ErrFileMissing}
		}
		return nil, &InputError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, &InputError{Path: path, Cause: ErrIsDirectory}
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, &InputError{Path: path, Cause: err}
	}
	return data, nil
}

// UploadFileInput uploads or inlines a local file.
type UploadFileInput struct {
	Model string
	Path  string
	Query string
}

const (
	uploadConfirmation = "File uploaded. Pass the file id to ask_about_file to ask questions about it."
	summarizeFile      = "Summarize this file."
)

// UploadFile makes a local file available to the model.
//
// Allow-listed types are uploaded and get a reusable file id; the query, when
// present, is answered against the uploaded file. Other types are read as
// UTF-8 and inlined, the id is models.InlineFileID, and the model either
// answers the query or summarizes the file.
func (a *Adapter) UploadFile(ctx context.Context, in UploadFileInput) (models.FileUploadResult, error) {
	data, err := a.readFile(in.Path)
	if err != nil {
		return models.FileUploadResult{}, err
	}
	name := filepath.Base(in.Path)

	if Uploadable(name) {
		res, err := a.uploadAndAsk(ctx, in, name, data)
		if !errors.Is(err, models.ErrUnsupportedCapability) {
			return res, err
		}
		a.logger.Info("provider has no file store, inlining", "file", name)
	}

	if !utf8.Valid(data) {
		return models.FileUploadResult{}, &InputError{Path: in.Path, Cause: ErrNotText}
	}

	query := in.Query
	if query == "" {
		query = summarizeFile
	}
	ex, err := a.respond(ctx, provider.ClassFileUpload, &models.UpstreamRequest{
		Model:  in.Model,
		Blocks: blocks("", models.TextPart{Text: inlineFile(name, data) + query}),
	})
	if err != nil {
		return models.FileUploadResult{}, err
	}
	return models.FileUploadResult{Text: ex.Answer(), FileName: name, FileID: models.InlineFileID}, nil
}

// uploadAndAsk uploads the file and, with a query, asks about it. Both calls
// share one deadline.
func (a *Adapter) uploadAndAsk(ctx context.Context, in UploadFileInput, name string, data []byte) (models.FileUploadResult, error) {
	return race(ctx, a, provider.ClassFileUpload, in.Model, func(ctx context.Context) (models.FileUploadResult, error) {
		f, err := a.provider.UploadFile(ctx, name, data)
		if err != nil {
			return models.FileUploadResult{}, err
		}
		res := models.FileUploadResult{Text: uploadConfirmation, FileName: f.Filename, FileID: f.ID}
		if in.Query == "" {
			return res, nil
		}

		resp, err := a.provider.Respond(ctx, &models.UpstreamRequest{
			Model:  in.Model,
			Blocks: blocks("", models.FileRefPart{FileID: f.ID}, models.TextPart{Text: in.Query}),
		})
		if err != nil {
			return models.FileUploadResult{}, err
		}
		res.Text = a.extract(resp, in.Model).Answer()
		return res, nil
	})
}

// inlineFile renders a file as a fenced block tagged with its extension.
func inlineFile(name string, data []byte) string {
	return fmt.Sprintf("File: %s\n```%s\n%s\n```\n\n", name, extension(name), strings.TrimRight(string(data), "\n"))
}

// AskAboutFileInput asks a question about a previously uploaded file.
type AskAboutFileInput struct {
	Model    string
	FileID   string
	Question string
}

// AskAboutFile answers a question against an uploaded file.
func (a *Adapter) AskAboutFile(ctx context.Context, in AskAboutFileInput) (models.FileUploadResult, error) {
	if in.FileID == models.InlineFileID {
		return models.FileUploadResult{}, &InputError{Cause: ErrInlineFileID}
	}
	ex, err := a.respond(ctx, provider.ClassFileUpload, &models.UpstreamRequest{
		Model:  in.Model,
		Blocks: blocks("", models.FileRefPart{FileID: in.FileID}, models.TextPart{Text: in.Question}),
	})
	if err != nil {
		return models.FileUploadResult{}, err
	}
	return models.FileUploadResult{Text: ex.Answer(), FileID: in.FileID}, nil
}
