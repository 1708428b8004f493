package engine

// --- Tool inputs ---

type FetchURLInput struct {
	URL        string `json:"url" jsonschema:"URL to fetch. https:// is assumed when no scheme is given"`
	Raw        bool   `json:"raw,omitempty" jsonschema:"Return HTML as-is instead of converting it to markdown (default: false)"`
	MaxLength  *int   `json:"max_length,omitempty" jsonschema:"Maximum number of characters to return (default: 2000)"`
	StartIndex *int   `json:"start_index,omitempty" jsonschema:"Character offset to start reading from; use it to page through long content (default: 0)"`
}

type YouTubeTranscriptInput struct {
	URL  string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be, embed, shorts) or a bare video ID"`
	Lang string `json:"lang,omitempty" jsonschema:"Preferred caption language code, e.g. en or de. Falls back to the first manual track, then the first auto-generated one"`
}

// --- Fetch pipeline output ---

// ContentKind tells the tool layer which content block to build.
type ContentKind int

const (
	KindText   ContentKind = iota // paginated text with header lines
	KindImage                     // raw bytes + mime type
	KindNotice                    // informational text, not an error
)

type FetchURLOutput struct {
	Kind            ContentKind
	ResolvedURL     string
	StartIndex      int
	RemainingLength int
	Content         string
	MIMEType        string
	Data            []byte
}
