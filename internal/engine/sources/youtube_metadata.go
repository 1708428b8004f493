package sources

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
)

// TrackKind distinguishes manually authored captions from speech recognition.
type TrackKind int

const (
	TrackStandard TrackKind = iota
	TrackAutoGenerated
)

func (k TrackKind) String() string {
	if k == TrackAutoGenerated {
		return "auto-generated"
	}
	return "standard"
}

func (k TrackKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// CaptionTrack describes one caption track offered for a video.
type CaptionTrack struct {
	LanguageCode string
	Name         string
	BaseURL      string
	Kind         TrackKind
}

// VideoMetadata is what the transcript pipeline needs from a watch page.
type VideoMetadata struct {
	Title  string
	Status string // playabilityStatus.status; "" or "OK" when playable
	Reason string
	Tracks []CaptionTrack
}

// Playable reports whether the player marked the video as watchable.
func (m *VideoMetadata) Playable() bool {
	return m.Status == "" || m.Status == "OK"
}

// MetadataExtractor pulls caption metadata out of a watch page.
// Implementations return ErrPageParse when the page has no usable data.
type MetadataExtractor interface {
	Extract(page []byte) (*VideoMetadata, error)
}

// DefaultExtractor reads the ytInitialPlayerResponse script assignment.
var DefaultExtractor MetadataExtractor = playerResponseExtractor{}

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// Paths into the player response, resolved with gjson.
const (
	pathTitle         = "videoDetails.title"
	pathStatus        = "playabilityStatus.status"
	pathReason        = "playabilityStatus.reason"
	pathSubreason     = "playabilityStatus.errorScreen.playerErrorMessageRenderer.subreason.simpleText"
	pathCaptionTracks = "captions.playerCaptionsTracklistRenderer.captionTracks"
)

type playerResponseExtractor struct{}

func (playerResponseExtractor) Extract(page []byte) (*VideoMetadata, error) {
	data := findPlayerResponse(page)
	if data == nil || !gjson.ValidBytes(data) {
		return nil, ErrPageParse
	}
	doc := gjson.ParseBytes(data)

	meta := &VideoMetadata{
		Title:  doc.Get(pathTitle).String(),
		Status: doc.Get(pathStatus).String(),
		Reason: doc.Get(pathReason).String(),
	}
	if meta.Reason == "" {
		meta.Reason = doc.Get(pathSubreason).String()
	}

	doc.Get(pathCaptionTracks).ForEach(func(_, t gjson.Result) bool {
		baseURL := t.Get("baseUrl").String()
		if baseURL == "" {
			return true
		}
		track := CaptionTrack{
			LanguageCode: t.Get("languageCode").String(),
			Name:         t.Get("name.simpleText").String(),
			BaseURL:      baseURL,
			Kind:         TrackStandard,
		}
		if track.Name == "" {
			track.Name = t.Get("name.runs.0.text").String()
		}
		if t.Get("kind").String() == "asr" {
			track.Kind = TrackAutoGenerated
		}
		meta.Tracks = append(meta.Tracks, track)
		return true
	})
	return meta, nil
}

// findPlayerResponse returns the first ytInitialPlayerResponse assignment
// whose right-hand side is a JSON object.
func findPlayerResponse(page []byte) []byte {
	marker := []byte(ytInitialPlayerResponseMarker)
	rest := page
	for {
		idx := bytes.Index(rest, marker)
		if idx < 0 {
			return nil
		}
		rest = rest[idx+len(marker):]
		if obj := extractJSON(rest); obj != nil {
			return obj
		}
	}
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// isCaptchaPage reports whether YouTube served its rate-limit captcha instead of the watch page.
func isCaptchaPage(page []byte) bool {
	return bytes.Contains(page, []byte(`class="g-recaptcha"`))
}

// absoluteTrackURL resolves root-relative caption URLs against youtube.com.
func absoluteTrackURL(baseURL string) string {
	if strings.HasPrefix(baseURL, "/") {
		return youtubeOrigin + baseURL
	}
	return baseURL
}
