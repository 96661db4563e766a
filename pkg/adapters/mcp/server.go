// Package mcp exposes the dispatcher as a Model Context Protocol server
// over stdio or SSE transports.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/casaops/casa"
	"github.com/casaops/casa/pkg/dispatch"
	"github.com/casaops/casa/pkg/tools"
)

// Server wraps a Dispatcher and advertises the tool catalogue over MCP.
type Server struct {
	dispatcher *dispatch.Dispatcher
	registry   *tools.Registry
	mcpServer  *server.MCPServer
	metrics    http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithMetricsHandler mounts a metrics endpoint on the SSE transport.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates an MCP server advertising every tool in the registry.
func NewServer(registry *tools.Registry, dispatcher *dispatch.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: dispatcher,
		registry:   registry,
		mcpServer: server.NewMCPServer("casa", strings.TrimSpace(casa.Version),
			server.WithToolCapabilities(true),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	for _, def := range s.registry.Definitions() {
		s.mcpServer.AddTool(def, s.handle(def.Name))
	}
}

// handle adapts one catalogue entry to the protocol. The dispatcher owns
// validation and error normalization; here we only translate its text
// outcome into a tool result.
func (s *Server) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, failed := s.dispatcher.Dispatch(ctx, name, request.GetArguments())
		if failed {
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// ServeStdio runs the server on stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE runs the server on the given port using Server-Sent Events,
// alongside health and (optionally) metrics endpoints. It blocks until the
// context is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.router(sseServer),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("shutdown signal received, stopping server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// router mounts the SSE transport next to health and metrics endpoints.
func (s *Server) router(sse *server.SSEServer) http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sse.SSEHandler())
	r.Handle("/message", sse.MessageHandler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
