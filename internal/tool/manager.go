package tool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/classify"
)

// Outcome labels used when observing calls.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUnknownTool  = "unknown_tool"
	OutcomeEmptyResult  = "empty_result"
)

// Observer records the outcome of each tool call.
type Observer interface {
	ObserveCall(tool, outcome string, elapsed time.Duration)
}

// toolImpl defines the interface for individual tools.
type toolImpl interface {
	// Name returns the tool's identifier.
	Name() string

	// Declaration returns the tool's schema for the caller.
	Declaration() Declaration

	// Input returns a pointer to a fresh argument struct.
	Input() any

	// Execute runs the tool with the decoded argument struct.
	Execute(ctx context.Context, input any) (Reply, error)
}

// Manager dispatches requests to registered tools.
type Manager struct {
	registry map[string]toolImpl
	logger   *slog.Logger
	observer Observer
}

// NewManager creates a Manager. A nil logger discards, a nil observer is skipped.
func NewManager(logger *slog.Logger, observer Observer, tools ...toolImpl) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Manager{
		registry: make(map[string]toolImpl),
		logger:   logger.With("component", "tools"),
		observer: observer,
	}
	for _, t := range tools {
		m.Register(t)
	}
	return m
}

// Register adds t, replacing any tool with the same name.
func (m *Manager) Register(t toolImpl) {
	m.registry[t.Name()] = t
}

// Declarations returns every tool declaration sorted by name.
func (m *Manager) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(m.registry))
	for _, t := range m.registry {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Names returns every tool name sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.registry))
	for name := range m.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute validates req, runs the tool and shapes the reply.
// Failures are reported in the reply; Execute itself never fails.
func (m *Manager) Execute(ctx context.Context, req Request) Reply {
	start := time.Now()
	logger := m.logger.With("request_id", req.ID, "tool", req.Name)

	reply, outcome := m.execute(ctx, req)

	elapsed := time.Since(start)
	if m.observer != nil {
		m.observer.ObserveCall(req.Name, outcome, elapsed)
	}
	if reply.IsError {
		logger.Warn("tool call failed", "outcome", outcome, "elapsed", elapsed)
	} else {
		logger.Info("tool call completed", "elapsed", elapsed)
	}
	return reply
}

func (m *Manager) execute(ctx context.Context, req Request) (Reply, string) {
	t, ok := m.registry[req.Name]
	if !ok {
		msg := fmt.Sprintf("unknown tool %q. Available tools: %s", req.Name, strings.Join(m.Names(), ", "))
		return ErrorReply(msg), OutcomeUnknownTool
	}

	schema := t.Declaration().InputSchema
	if err := validateArgs(req.Name, schema, req.Arguments); err != nil {
		return ErrorReply(err.Error()), OutcomeInvalidInput
	}

	input := t.Input()
	if err := decodeArgs(withDefaults(schema, req.Arguments), input); err != nil {
		return ErrorReply(fmt.Sprintf("invalid arguments for tool %q: %v", req.Name, err)), OutcomeInvalidInput
	}

	reply, err := t.Execute(ctx, input)
	if err == nil {
		if reply.IsError {
			return reply, OutcomeEmptyResult
		}
		return reply, OutcomeSuccess
	}
	if isLocal(err) {
		return ErrorReply(err.Error()), OutcomeInvalidInput
	}

	m.logger.Debug("upstream failure", "request_id", req.ID, "tool", req.Name, "error", err)
	c := classify.Classify(err)
	return ErrorReply(c.Message), string(c.Category)
}
