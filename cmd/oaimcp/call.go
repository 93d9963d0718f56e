package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Cyclone1070/oaimcp/internal/logging"
	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/Cyclone1070/oaimcp/internal/ui"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errToolFailed = errors.New("tool call failed")

type callOptions struct {
	Args  string
	Raw   bool
	Width int
}

func newCallCmd(deps Dependencies) *cobra.Command {
	var options callOptions

	cmd := &cobra.Command{
		Use:   "call <tool> [flags]",
		Short: "Call one tool locally and print its reply",
		Example: `  # Ask a question
  oaimcp call ask --args '{"prompt":"What is MCP?"}'

  # Generate an image into ./out.png
  oaimcp call generate_image --args '{"prompt":"a lighthouse","save_path":"out.png"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd.Context(), deps, args[0], options)
		},
	}

	cmd.Flags().StringVarP(&options.Args, "args", "a", "{}", "tool arguments as a JSON object")
	cmd.Flags().BoolVar(&options.Raw, "raw", false, "print text parts without markdown rendering")
	cmd.Flags().IntVar(&options.Width, "width", 100, "wrap width for rendered output")
	return cmd
}

func runCall(ctx context.Context, deps Dependencies, name string, options callOptions) error {
	var arguments map[string]any
	if err := json.Unmarshal([]byte(options.Args), &arguments); err != nil {
		return fmt.Errorf("--args must be a JSON object: %w", err)
	}

	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The spinner owns the terminal, so logs stay quiet unless asked for.
	level := cfg.Log.Level
	if deps.Interactive && level == "info" {
		level = "warn"
	}
	logger := logging.New(level, cfg.Log.Format, deps.Stderr)

	manager, err := buildManager(ctx, deps, cfg, logger, nil)
	if err != nil {
		return err
	}

	req := tool.Request{ID: uuid.NewString(), Name: name, Arguments: arguments}
	reply, err := ui.RunCall(ctx, name, deps.Stdin, deps.Stderr, deps.Interactive, ui.DefaultSpinner,
		func(ctx context.Context) tool.Reply { return manager.Execute(ctx, req) })
	if err != nil {
		return err
	}

	if options.Raw {
		fmt.Fprintln(deps.Stdout, reply.Text())
	} else {
		fmt.Fprint(deps.Stdout, ui.RenderReply(name, reply, ui.NewGlamourRenderer(glamourStyle(deps)), options.Width))
	}

	if reply.IsError {
		return errToolFailed
	}
	return nil
}

func glamourStyle(deps Dependencies) string {
	if deps.Interactive {
		return ""
	}
	return "notty"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
