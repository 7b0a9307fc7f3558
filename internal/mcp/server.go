// ABOUTME: MCP server wiring for the Intervals.icu tool surface
// ABOUTME: Owns transport selection: stdio, streamable HTTP, or SSE
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mvilanova/intervals-mcp/internal/config"
	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// Server wraps the MCP server with the Intervals.icu client and the
// process configuration.
type Server struct {
	mcpServer *mcp.Server
	client    *icu.Client
	cfg       *config.Config
	logger    *log.Logger
}

// NewServer creates the MCP server and registers all tools and prompts.
func NewServer(cfg *config.Config, client *icu.Client, logger *log.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "intervals-icu",
		Version: "0.1.0",
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		client:    client,
		cfg:       cfg,
		logger:    logger,
	}

	s.registerTools()
	s.registerPrompts()

	return s
}

// Run starts the configured transport and blocks until ctx is done or
// the transport closes.
func (s *Server) Run(ctx context.Context) error {
	switch s.cfg.TransportKind() {
	case config.TransportStdio:
		s.logger.Info("starting MCP server", "transport", "stdio")
		return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	case config.TransportHTTP:
		s.logger.Info("starting MCP server", "transport", "http",
			"addr", s.cfg.ListenAddr(), "path", s.cfg.Path)
		return s.serveHTTP(ctx, s.httpHandler())
	case config.TransportSSE:
		s.logger.Info("starting MCP server", "transport", "sse",
			"addr", s.cfg.ListenAddr(), "path", "/sse")
		return s.serveHTTP(ctx, s.sseHandler())
	default:
		return errors.New("no transport configured")
	}
}

// httpHandler builds the mux for the streamable HTTP transport. The
// MCP endpoint sits behind bearer auth; /healthz stays open for load
// balancer probes.
func (s *Server) httpHandler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(s.cfg.Path, s.requireBearer(handler))
	mux.HandleFunc("/healthz", handleHealthz)
	return mux
}

// sseHandler builds the mux for the SSE transport. The SDK handler
// serves both the event stream and the follow-up message POSTs, so it
// is mounted on both paths, each behind bearer auth.
func (s *Server) sseHandler() http.Handler {
	handler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/sse", s.requireBearer(handler))
	mux.Handle("/messages/", s.requireBearer(handler))
	mux.HandleFunc("/healthz", handleHealthz)
	return mux
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// serveHTTP runs an HTTP server until ctx is cancelled, then shuts it
// down gracefully.
func (s *Server) serveHTTP(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
