// Package toolutil provides shared helpers for go_fetch MCP tools:
// result constructors and the error/panic boundary every handler runs behind.
package toolutil

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TextResult wraps text in a single-block tool result.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// ImageResult wraps raw image bytes; the SDK base64-encodes Data on the wire.
func ImageResult(data []byte, mimeType string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{Data: data, MIMEType: mimeType}},
	}
}

// ErrorResult reports err to the caller as an error-flagged text result.
func ErrorResult(err error) *mcp.CallToolResult {
	res := TextResult(err.Error())
	res.IsError = true
	return res
}

// Guard runs fn and converts its error, or a panic inside it, into an
// error-flagged result. It never returns nil.
func Guard(ctx context.Context, tool string, fn func() (*mcp.CallToolResult, error)) (res *mcp.CallToolResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "tool panicked",
				slog.String("tool", tool),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			res = ErrorResult(fmt.Errorf("%v", r))
		}
	}()

	res, err := fn()
	if err != nil {
		slog.WarnContext(ctx, "tool failed", slog.String("tool", tool), slog.Any("error", err))
		return ErrorResult(err)
	}
	if res == nil {
		return TextResult("")
	}
	return res
}
