package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Cyclone1070/oaimcp/internal/logging"
	"github.com/Cyclone1070/oaimcp/internal/metrics"
	"github.com/Cyclone1070/oaimcp/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over MCP on stdin/stdout",
		Example: `  # Register with an MCP client
  OPENAI_API_KEY=sk-... oaimcp serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), deps)
		},
	}
}

func runServe(ctx context.Context, deps Dependencies) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, deps.Stderr).With("provider", cfg.Provider)
	slog.SetDefault(logger)
	m := metrics.New()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Error("metrics endpoint stopped", "error", err)
			}
		}()
	}

	manager, err := buildManager(ctx, deps, cfg, logger, m)
	if err != nil {
		return err
	}

	srv, err := server.New(manager, version, logger)
	if err != nil {
		return err
	}
	return srv.Serve(ctx, deps.Stdin, deps.Stdout)
}
