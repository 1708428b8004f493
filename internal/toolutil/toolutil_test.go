package toolutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestGuard_Success(t *testing.T) {
	res := Guard(context.Background(), "t", func() (*mcp.CallToolResult, error) {
		return TextResult("ok"), nil
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "ok", resultText(t, res))
}

func TestGuard_Error(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New("inner"))
	res := Guard(context.Background(), "t", func() (*mcp.CallToolResult, error) {
		return nil, wrapped
	})
	assert.True(t, res.IsError)
	assert.Equal(t, "outer: inner", resultText(t, res))
}

func TestGuard_Panic(t *testing.T) {
	res := Guard(context.Background(), "t", func() (*mcp.CallToolResult, error) {
		panic("boom")
	})
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Equal(t, "boom", resultText(t, res))

	res = Guard(context.Background(), "t", func() (*mcp.CallToolResult, error) {
		var m map[string]int
		m["x"] = 1
		return nil, nil
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "nil map")
}

func TestGuard_NilResult(t *testing.T) {
	res := Guard(context.Background(), "t", func() (*mcp.CallToolResult, error) {
		return nil, nil
	})
	require.NotNil(t, res)
	assert.False(t, res.IsError)
}

func TestImageResult(t *testing.T) {
	res := ImageResult([]byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.Len(t, res.Content, 1)
	img, ok := res.Content[0].(*mcp.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img.Data)
}
