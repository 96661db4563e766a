package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/casaops/casa/internal/config"
	"github.com/casaops/casa/internal/logging"
	"github.com/casaops/casa/internal/metrics"
	mcpadapter "github.com/casaops/casa/pkg/adapters/mcp"
	"github.com/casaops/casa/pkg/dispatch"
	"github.com/casaops/casa/pkg/homeassistant"
	"github.com/casaops/casa/pkg/tools"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts casa as an MCP server bridging AI agents to Home Assistant.

Supported transports:
- stdio (default): Standard input/output. Ideal for local process integration
  (e.g. Claude Desktop).
- sse: Server-Sent Events over HTTP, with /healthz and /metrics endpoints.
  Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger := logging.New(cfg.SlogLevel())
		slog.SetDefault(logger)

		gateway := homeassistant.New(homeassistant.Config{
			BaseURL:     cfg.BaseURL,
			Token:       cfg.Token,
			VerifySSL:   cfg.VerifySSL,
			Timeout:     cfg.CallTimeout.Std(),
			ReadRetries: cfg.ReadRetries,
		}, homeassistant.WithLogger(logger))

		registry := tools.Default()
		recorder := metrics.NewRecorder()
		dispatcher := dispatch.New(registry, gateway,
			dispatch.WithLogger(logger),
			dispatch.WithRecorder(recorder),
			dispatch.WithCallTimeout(cfg.CallTimeout.Std()),
		)

		srv := mcpadapter.NewServer(registry, dispatcher,
			mcpadapter.WithMetricsHandler(recorder.Handler()),
		)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on stdout
			log.SetOutput(os.Stderr)
			slog.Info("starting casa MCP server (stdio)", "backend", cfg.BaseURL)
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("starting casa MCP server (SSE)", "port", port, "backend", cfg.BaseURL)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					slog.Error("MCP server execution failed", "err", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP server stopped gracefully")
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown transport %q. Supported: stdio, sse\n", transport)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
