// Package fetchserver registers the go_fetch MCP tools.
package fetchserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterTools registers all content tools on the given MCP server:
// fetch_url, fetch_youtube_transcript.
func RegisterTools(server *mcp.Server) {
	registerFetchURL(server)
	registerYouTubeTranscript(server)
}

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 2
