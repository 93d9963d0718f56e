package ui

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	MediaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// MarkdownRenderer renders markdown for the terminal.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	style string
}

// NewGlamourRenderer creates a renderer using the named glamour style.
// An empty style picks one from the terminal background.
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if g.style != "" {
		styleOpt = glamour.WithStandardStyle(g.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderReply formats a reply for a human: a status line, the text parts as
// markdown and a one-line note per image.
func RenderReply(name string, reply tool.Reply, renderer MarkdownRenderer, width int) string {
	var sb strings.Builder
	if reply.IsError {
		sb.WriteString(ErrorStyle.Render("✘ " + name))
	} else {
		sb.WriteString(SuccessStyle.Render("✔ " + name))
	}
	sb.WriteString("\n\n")

	for _, c := range reply.Content {
		switch c := c.(type) {
		case tool.TextContent:
			rendered, err := renderer.Render(c.Text, width)
			if err != nil {
				rendered = c.Text + "\n"
			}
			sb.WriteString(rendered)
		case tool.ImageContent:
			sb.WriteString(MediaStyle.Render(fmt.Sprintf("[%s, %d bytes]", c.MIMEType, len(c.Data))))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
