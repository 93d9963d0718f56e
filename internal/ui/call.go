// Package ui renders tool calls made from the command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner shown while a call runs.
func DefaultSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle))
}

type replyMsg struct {
	reply tool.Reply
}

type tickMsg time.Time

// callModel shows a spinner and the elapsed time until the call finishes.
type callModel struct {
	name    string
	spinner spinner.Model
	started time.Time
	now     time.Time
	run     func() tool.Reply
	cancel  context.CancelFunc

	done  bool
	reply tool.Reply
}

func newCallModel(name string, sp spinner.Model, run func() tool.Reply, cancel context.CancelFunc) callModel {
	now := time.Now()
	return callModel{name: name, spinner: sp, started: now, now: now, run: run, cancel: cancel}
}

func (m callModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tick(),
		func() tea.Msg { return replyMsg{reply: m.run()} },
	)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m callModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		m.done = true
		m.reply = msg.reply
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			// The call returns promptly once its context is cancelled.
			m.cancel()
		}
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m callModel) View() string {
	if m.done {
		return ""
	}
	elapsed := m.now.Sub(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s Calling %s (%s)\n", m.spinner.View(), m.name, elapsed)
}

// RunCall runs call behind a spinner on out and returns its reply.
// With interactive false the spinner is skipped.
func RunCall(ctx context.Context, name string, in io.Reader, out io.Writer, interactive bool, sf SpinnerFactory, call func(context.Context) tool.Reply) (tool.Reply, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !interactive {
		return call(ctx), nil
	}

	model := newCallModel(name, sf(), func() tool.Reply { return call(ctx) }, cancel)
	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return tool.Reply{}, fmt.Errorf("run spinner: %w", err)
	}
	return final.(callModel).reply, nil
}
