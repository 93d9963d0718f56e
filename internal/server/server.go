// Package server binds the tool manager to the MCP stdio transport.
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	Name         = "oaimcp"
	instructions = "Tools backed by OpenAI: text generation, web search, reasoning, code execution, " +
		"files, images, speech and transcription. Generated media is saved to disk and the path is returned."
)

// Server exposes every registered tool over MCP.
type Server struct {
	manager *tool.Manager
	mcp     *mcpserver.MCPServer
	logger  *slog.Logger
}

// New registers every declaration of manager with a fresh MCP server.
func New(manager *tool.Manager, version string, logger *slog.Logger) (*Server, error) {
	s := &Server{
		manager: manager,
		logger:  logger.With("component", "server"),
		mcp: mcpserver.NewMCPServer(Name, version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
			mcpserver.WithInstructions(instructions),
		),
	}

	for _, decl := range manager.Declarations() {
		raw, err := json.Marshal(decl.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema for %s: %w", decl.Name, err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(decl.Name, decl.Description, raw), s.handle)
	}
	return s, nil
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve speaks MCP over in and out until ctx is done or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("serving on stdio", "tools", len(s.manager.Names()))
	return stdio.Listen(ctx, in, out)
}

func (s *Server) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if args == nil && req.Params.Arguments != nil {
		return toResult(tool.ErrorReply("arguments must be a JSON object")), nil
	}

	reply := s.manager.Execute(ctx, tool.Request{
		ID:        uuid.NewString(),
		Name:      req.Params.Name,
		Arguments: args,
	})
	return toResult(reply), nil
}

// toResult converts a reply to its MCP form. Images are base64 encoded.
func toResult(reply tool.Reply) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: make([]mcp.Content, 0, len(reply.Content)),
		IsError: reply.IsError,
	}
	for _, c := range reply.Content {
		switch c := c.(type) {
		case tool.TextContent:
			result.Content = append(result.Content, mcp.NewTextContent(c.Text))
		case tool.ImageContent:
			result.Content = append(result.Content, mcp.NewImageContent(base64.StdEncoding.EncodeToString(c.Data), c.MIMEType))
		}
	}
	return result
}
