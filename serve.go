package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_fetch/internal/engine"
	"github.com/anatolykoptev/go_fetch/internal/fetchserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const serverName = "go_fetch"

type serveOptions struct {
	transport string
	port      string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := serveOptions{
		transport: env.Str("MCP_TRANSPORT", "http"),
		port:      env.Str("MCP_PORT", "8892"),
		logLevel:  env.Str("LOG_LEVEL", "info"),
	}

	cmd := &cobra.Command{
		Use:   serverName,
		Short: "MCP server that fetches web content and YouTube transcripts",
		Long: `go_fetch exposes two MCP tools:
  - fetch_url: fetch a URL as markdown, text or image
  - fetch_youtube_transcript: timestamped captions of a YouTube video

Supported transports:
  - stdio: standard input/output
  - sse: server-sent events on /sse
  - http: streamable HTTP`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", opts.transport, "Transport type: stdio, sse or http. Can also use MCP_TRANSPORT env var.")
	cmd.Flags().StringVar(&opts.port, "port", opts.port, "Listen port for sse and http transports. Can also use MCP_PORT env var.")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn or error. Can also use LOG_LEVEL env var.")
	return cmd
}

func runServe(ctx context.Context, opts serveOptions) error {
	if err := setupLogging(opts.logLevel); err != nil {
		return err
	}
	initEngine()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	fetchserver.RegisterTools(server)

	slog.Info("starting go_fetch",
		slog.String("transport", opts.transport),
		slog.String("port", opts.port),
		slog.Int("tools", fetchserver.ToolCount),
	)

	transport := strings.ToLower(opts.transport)
	switch transport {
	case "http", "streamable-http":
		// mcpserver.Run owns the listener lifecycle, shutdown included.
		return mcpserver.Run(server, mcpserver.Config{
			Name:         serverName,
			Version:      version,
			Port:         opts.port,
			WriteTimeout: 120 * time.Second,
			Metrics:      engine.FormatMetrics,
		})
	case "stdio", "sse":
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, http)", opts.transport)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if transport == "stdio" {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
	return runSSE(ctx, server, opts.port)
}

func runSSE(ctx context.Context, server *mcp.Server, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/sse", mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server }, nil))
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(engine.FormatMetrics()))
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("sse listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received, stopping sse server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down sse server: %w", err)
	}
	return nil
}

// setupLogging installs the default slog handler. Logs go to stderr so the
// stdio transport keeps stdout for protocol frames.
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func initEngine() {
	engine.Init(engine.Config{
		FetchTimeout: env.Duration("FETCH_TIMEOUT", 30*time.Second),
		MaxBodyBytes: int64(env.Int("MAX_BODY_BYTES", 10<<20)),
		MaxRedirects: env.Int("MAX_REDIRECTS", 10),
		UserAgent:    env.Str("USER_AGENT", ""),
	})
}
