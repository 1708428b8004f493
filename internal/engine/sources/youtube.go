package sources

import "regexp"

// YouTube implementation is split across files by responsibility:
//   youtube.go            — video ID resolution and endpoint constants
//   youtube_metadata.go   — ytInitialPlayerResponse extraction behind MetadataExtractor
//   youtube_transcript.go — the transcript pipeline and caption track selection
//   timedtext.go          — timed-text XML parsing
//   timestamp.go          — offset formatting and transcript rendering

var watchPageURL = "https://www.youtube.com/watch?v="

// SetWatchPageURL points transcript fetches at another watch page prefix
// (a mirror or a local server); the video ID is appended to it.
// It returns a func that restores the previous prefix. Not safe to call
// while transcripts are being fetched.
func SetWatchPageURL(prefix string) (restore func()) {
	prev := watchPageURL
	watchPageURL = prefix
	return func() { watchPageURL = prev }
}

const youtubeOrigin = "https://www.youtube.com"

// videoIDRE matches the 11-char video ID in watch, short, embed, shorts, live
// and legacy /v/ links on any youtube host.
var videoIDRE = regexp.MustCompile(
	`(?i)(?:youtube(?:-nocookie)?\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|live/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})`,
)

// ExtractVideoID pulls the video ID from any known YouTube URL shape.
// Input that matches no shape is returned unchanged, so bare IDs pass through.
func ExtractVideoID(input string) string {
	if m := videoIDRE.FindStringSubmatch(input); len(m) == 2 {
		return m[1]
	}
	return input
}
