// Package main provides the oaimcp command: an MCP tool server over stdio
// exposing OpenAI capabilities, plus local commands to inspect and call tools.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cyclone1070/oaimcp/internal/adapter"
	"github.com/Cyclone1070/oaimcp/internal/config"
	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/gemini"
	"github.com/Cyclone1070/oaimcp/internal/provider/openai"
	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var version = "dev"

// Dependencies holds the components required to run the application.
type Dependencies struct {
	LoadConfig      func() (*config.Config, error)
	ProviderFactory func(context.Context, *config.Config) (provider.Provider, error)
	Fs              afero.Fs
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	// Interactive enables the spinner for `call`.
	Interactive bool
}

func createRealProviderFactory() func(context.Context, *config.Config) (provider.Provider, error) {
	return func(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
		switch cfg.Provider {
		case config.ProviderGemini:
			genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cfg.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create Gemini client: %w", err)
			}
			return gemini.New(gemini.NewRealGeminiClient(genaiClient)), nil
		default:
			return openai.New(openai.NewRealOpenAIClient(cfg.APIKey, cfg.BaseURL)), nil
		}
	}
}

// buildManager wires the provider, adapter and tools for cfg.
func buildManager(ctx context.Context, deps Dependencies, cfg *config.Config, logger *slog.Logger, observer tool.Observer) (*tool.Manager, error) {
	p, err := deps.ProviderFactory(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := adapter.New(p, deps.Fs, adapter.Options{
		BaseTimeout: cfg.Timeout(),
		Policy:      provider.RacePolicy{CancelAbandoned: cfg.CancelOnTimeout},
		Logger:      logger,
	})
	media := tool.NewMediaWriter(deps.Fs, cfg.OutputDir)

	return tool.NewManager(logger, observer, tool.New(a, cfg.Models, media)...), nil
}

func newRootCmd(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "oaimcp",
		Short:         "MCP tool server for OpenAI capabilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the server runs, so MCP clients can launch the bare binary.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), deps)
		},
	}
	root.SetIn(deps.Stdin)
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	root.AddCommand(
		newServeCmd(deps),
		newCallCmd(deps),
		newToolsCmd(deps),
	)
	return root
}

func main() {
	deps := Dependencies{
		LoadConfig:      config.Load,
		ProviderFactory: createRealProviderFactory(),
		Fs:              afero.NewOsFs(),
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Interactive:     isTerminal(os.Stdout),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(deps).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
