package tool

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

const (
	emptyTextMessage = "The provider returned an empty response."
	noImagesMessage  = "No images were generated. The request was most likely blocked by the provider's safety filters; rephrase the prompt and try again."
	noAudioMessage   = "The provider returned no audio data."
)

// textReply composes the reply for a text-bearing result.
func textReply(result models.Result) Reply {
	var sb strings.Builder

	switch r := result.(type) {
	case models.PlainText:
		sb.WriteString(r.Text)
	case models.SearchResult:
		sb.WriteString(r.Text)
		writeSources(&sb, r.Citations)
	case models.ReasoningResult:
		if r.Trace != "" {
			fmt.Fprintf(&sb, "## Reasoning\n%s\n\n## Answer\n", r.Trace)
		}
		sb.WriteString(r.Text)
	case models.CodeExecutionResult:
		sb.WriteString(r.Text)
		if r.Code != "" {
			fmt.Fprintf(&sb, "\n\n## Code\n```python\n%s\n```", r.Code)
		}
		if r.Output != "" {
			fmt.Fprintf(&sb, "\n\n## Output\n```\n%s\n```", r.Output)
		}
	case models.FileUploadResult:
		// The upload confirmation always carries text, so blank text is an empty answer.
		if strings.TrimSpace(r.Text) == "" {
			return ErrorReply(emptyTextMessage)
		}
		if r.FileName != "" {
			fmt.Fprintf(&sb, "File: %s\n", r.FileName)
		}
		fmt.Fprintf(&sb, "File ID: %s\n\n%s", r.FileID, r.Text)
		return TextReply(strings.TrimRight(sb.String(), "\n"))
	}

	if strings.TrimSpace(sb.String()) == "" {
		return ErrorReply(emptyTextMessage)
	}
	return TextReply(sb.String())
}

func writeSources(sb *strings.Builder, citations []models.Citation) {
	if len(citations) == 0 {
		return
	}
	sb.WriteString("\n\n## Sources\n")
	for i, c := range citations {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(sb, "- [%s](%s)", c.Title, c.URL)
	}
}

// mediaReply saves every image and returns a text and image part per image.
func mediaReply(w *MediaWriter, result models.MediaResult, savePath, prefix, ext string) (Reply, error) {
	if len(result.Images) == 0 {
		return ErrorReply(noImagesMessage), nil
	}

	paths := w.Paths(savePath, prefix, ext, len(result.Images))
	reply := Reply{Content: make([]Content, 0, 2*len(result.Images))}
	for i, img := range result.Images {
		if err := w.Write(paths[i], img.Data); err != nil {
			return Reply{}, err
		}
		text := "Image saved to " + paths[i]
		if img.RevisedPrompt != "" {
			text += "\nRevised prompt: " + img.RevisedPrompt
		}
		reply.Content = append(reply.Content,
			TextContent{Text: text},
			ImageContent{Data: img.Data, MIMEType: result.MIMEType},
		)
	}
	return reply, nil
}

// audioReply saves synthesized speech and reports where it went.
func audioReply(w *MediaWriter, result models.AudioResult, savePath string) (Reply, error) {
	if len(result.Data) == 0 {
		return ErrorReply(noAudioMessage), nil
	}
	path := w.Paths(savePath, "speech", result.Format, 1)[0]
	if err := w.Write(path, result.Data); err != nil {
		return Reply{}, err
	}
	return TextReply(fmt.Sprintf("Audio saved to %s (%d bytes, %s)", path, len(result.Data), result.Format)), nil
}
