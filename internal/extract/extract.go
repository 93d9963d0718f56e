// Package extract normalizes upstream output items into result records.
package extract

import (
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// DefaultCitationTitle is used for citations that arrive without a title.
const DefaultCitationTitle = "Untitled"

// Extraction accumulates everything one pass over an UpstreamResponse yields.
type Extraction struct {
	// Text is every output-text part concatenated in order with no separator.
	Text string
	// Refusal is the concatenated refusal text, kept apart from Text.
	Refusal string
	// Citations are URL citations deduplicated by URL, first occurrence wins.
	Citations []models.Citation
	// Trace is every reasoning summary fragment concatenated in order.
	Trace string
	// Code is the code of every interpreter call, newline-joined.
	Code string
	// Output is every logs-type interpreter output, newline-joined.
	Output string
	// Unknown lists the type names of items that were not recognized.
	Unknown []string
}

// Extract walks resp.Items once and accumulates an Extraction.
func Extract(resp *models.UpstreamResponse) *Extraction {
	ex := &Extraction{}
	if resp == nil {
		return ex
	}

	var text, refusal, trace strings.Builder
	var code, logs []string
	seen := make(map[string]bool)

	for _, item := range resp.Items {
		switch it := item.(type) {
		case models.MessageItem:
			for _, part := range it.Parts {
				switch p := part.(type) {
				case models.OutputText:
					text.WriteString(p.Text)
					for _, a := range p.Annotations {
						if a.Kind != models.AnnotationURLCitation || a.URL == "" || seen[a.URL] {
							continue
						}
						seen[a.URL] = true
						title := a.Title
						if title == "" {
							title = DefaultCitationTitle
						}
						ex.Citations = append(ex.Citations, models.Citation{Title: title, URL: a.URL})
					}
				case models.Refusal:
					refusal.WriteString(p.Text)
				}
			}
		case models.WebSearchCallItem:
			// Citations come from message annotations
		case models.ReasoningItem:
			for _, s := range it.Summary {
				trace.WriteString(s)
			}
		case models.CodeInterpreterCallItem:
			if it.Code != "" {
				code = append(code, it.Code)
			}
			for _, out := range it.Outputs {
				if out.Kind == models.CodeOutputLogs && out.Logs != "" {
					logs = append(logs, out.Logs)
				}
			}
		case models.UnknownItem:
			ex.Unknown = append(ex.Unknown, it.Type)
		default:
			ex.Unknown = append(ex.Unknown, "unmodeled")
		}
	}

	ex.Text = text.String()
	ex.Refusal = refusal.String()
	ex.Trace = trace.String()
	ex.Code = strings.Join(code, "\n")
	ex.Output = strings.Join(logs, "\n")
	return ex
}

// Answer returns Text, or the refusal when the model produced no text.
func (e *Extraction) Answer() string {
	if e.Text == "" {
		return e.Refusal
	}
	return e.Text
}

// PlainText returns the extraction as a PlainText result.
func (e *Extraction) PlainText() models.PlainText {
	return models.PlainText{Text: e.Answer()}
}

// SearchResult returns the extraction as a SearchResult.
func (e *Extraction) SearchResult() models.SearchResult {
	return models.SearchResult{Text: e.Answer(), Citations: e.Citations}
}

// ReasoningResult returns the extraction as a ReasoningResult.
func (e *Extraction) ReasoningResult() models.ReasoningResult {
	return models.ReasoningResult{Text: e.Answer(), Trace: e.Trace}
}

// CodeExecutionResult returns the extraction as a CodeExecutionResult.
func (e *Extraction) CodeExecutionResult() models.CodeExecutionResult {
	return models.CodeExecutionResult{Text: e.Answer(), Code: e.Code, Output: e.Output}
}
