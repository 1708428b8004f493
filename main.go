// go_fetch — URL fetch & YouTube transcript MCP server.
//
// Exposes two MCP tools: fetch_url, fetch_youtube_transcript.
// Runs over stdio, SSE or streamable HTTP.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	loadDotEnv(".env")
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load env file", slog.String("path", path), slog.Any("error", err))
	}
}
