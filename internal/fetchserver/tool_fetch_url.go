package fetchserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_fetch/internal/engine"
	"github.com/anatolykoptev/go_fetch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFetchURL(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_url",
		Description: "Fetch a URL and return its content. HTML pages are converted to markdown unless raw is set; JSON, XML and other text is returned as-is; images are returned as image content. Long content is paginated: the header reports the remaining length, call again with start_index to continue.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.FetchURLInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Guard(ctx, "fetch_url", func() (*mcp.CallToolResult, error) {
			return handleFetchURL(ctx, input)
		}), nil, nil
	})
}

func handleFetchURL(ctx context.Context, input engine.FetchURLInput) (*mcp.CallToolResult, error) {
	if input.URL == "" {
		return nil, errors.New("url is required")
	}
	out, err := engine.FetchURL(ctx, input)
	if err != nil {
		return nil, err
	}
	switch out.Kind {
	case engine.KindImage:
		return toolutil.ImageResult(out.Data, out.MIMEType), nil
	case engine.KindNotice:
		return toolutil.TextResult(out.Content), nil
	default:
		return toolutil.TextResult(engine.FormatFetchText(out)), nil
	}
}
