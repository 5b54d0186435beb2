package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/isdmx/scriptbox/config"
	"github.com/isdmx/scriptbox/logger"
	"github.com/isdmx/scriptbox/mcpserver"
	"github.com/isdmx/scriptbox/sandbox"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the run_python_file tool over MCP",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	app := fx.New(
		fx.Provide(
			func() (*config.Config, error) { return config.Load(configFile) },
			logger.NewFromConfig,
			sandbox.NewRunnerFromConfig,
			func(r *sandbox.Runner) mcpserver.ScriptRunner { return r },
			mcpserver.New,
		),

		fx.Invoke(startTransport),

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

// startTransport serves the configured transport in the background and shuts
// the application down when it stops.
func startTransport(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, server *mcpserver.MCPServer, log *zap.Logger) error {
	var serve func() error
	switch cfg.Server.Transport {
	case "stdio":
		serve = server.ServeStdio
	case "http":
		serve = server.ServeHTTP
	default:
		return fmt.Errorf("unsupported transport: %s", cfg.Server.Transport)
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := serve()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("transport stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.Server.Transport == "http" {
				return server.Shutdown(ctx)
			}
			return nil
		},
	})
	return nil
}
