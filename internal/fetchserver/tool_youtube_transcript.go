package fetchserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_fetch/internal/engine"
	"github.com/anatolykoptev/go_fetch/internal/engine/sources"
	"github.com/anatolykoptev/go_fetch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerYouTubeTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_youtube_transcript",
		Description: "Fetch the transcript of a YouTube video. Accepts watch, youtu.be, embed and shorts links or a bare video ID. Returns the video title followed by one [timestamp] line per caption. Manual captions are preferred over auto-generated ones; pass lang to prefer a language.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.YouTubeTranscriptInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Guard(ctx, "fetch_youtube_transcript", func() (*mcp.CallToolResult, error) {
			return handleYouTubeTranscript(ctx, input)
		}), nil, nil
	})
}

func handleYouTubeTranscript(ctx context.Context, input engine.YouTubeTranscriptInput) (*mcp.CallToolResult, error) {
	if input.URL == "" {
		return nil, errors.New("url is required")
	}
	tr, err := sources.FetchTranscript(ctx, input.URL, input.Lang)
	if err != nil {
		return nil, err
	}
	slog.Debug("youtube transcript fetched",
		slog.String("id", tr.VideoID),
		slog.String("lang", tr.LanguageCode),
		slog.Int("lines", len(tr.Lines)),
	)
	return toolutil.TextResult(sources.FormatTranscript(tr)), nil
}
