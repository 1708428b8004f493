package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_fetch/internal/engine"
)

// YouTube transcript fetching: watch page → ytInitialPlayerResponse →
// caption track → timedtext XML. Two sequential requests, no retries.

// Transcript is built once per call and returned; nothing is cached.
type Transcript struct {
	VideoID      string           `json:"video_id"`
	Title        string           `json:"title"`
	LanguageCode string           `json:"language_code"`
	Kind         TrackKind        `json:"kind"`
	Lines        []TranscriptLine `json:"lines"`
}

// watchPageHeaders pre-accept the EU cookie consent so the watch page is
// served directly instead of the consent interstitial.
var watchPageHeaders = map[string]string{
	"Accept-Language": "en-US,en;q=0.9",
	"Cookie":          "CONSENT=YES+cb",
}

// FetchTranscript resolves the video ID from input, downloads the watch page,
// selects a caption track and returns its parsed lines.
// lang is an optional language preference; empty means none.
func FetchTranscript(ctx context.Context, input, lang string) (t *Transcript, err error) {
	return fetchTranscript(ctx, input, lang, DefaultExtractor)
}

func fetchTranscript(ctx context.Context, input, lang string, extractor MetadataExtractor) (t *Transcript, err error) {
	engine.IncrYouTubeTranscript()
	defer func() {
		if err != nil {
			engine.IncrYouTubeTranscriptError()
		}
	}()

	videoID := ExtractVideoID(input)

	page, err := fetchPage(ctx, watchPageURL+url.QueryEscape(videoID), watchPageHeaders)
	if err != nil {
		return nil, err
	}
	if isCaptchaPage(page) {
		return nil, ErrTooManyRequests
	}

	meta, err := extractor.Extract(page)
	if err != nil {
		return nil, err
	}
	if !meta.Playable() {
		return nil, &VideoUnavailableError{VideoID: videoID, Status: meta.Status, Reason: meta.Reason}
	}
	if len(meta.Tracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	track := SelectTrack(meta.Tracks, lang)
	slog.Debug("youtube: caption track selected",
		slog.String("id", videoID),
		slog.String("lang", track.LanguageCode),
		slog.String("kind", track.Kind.String()),
	)

	data, err := fetchPage(ctx, absoluteTrackURL(track.BaseURL), nil)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: caption track %s returned an empty document", ErrTranscriptsDisabled, track.LanguageCode)
	}
	lines, err := ParseTimedText(data)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: caption track %s has no entries", ErrTranscriptsDisabled, track.LanguageCode)
	}

	return &Transcript{
		VideoID:      videoID,
		Title:        meta.Title,
		LanguageCode: track.LanguageCode,
		Kind:         track.Kind,
		Lines:        lines,
	}, nil
}

// fetchPage GETs rawURL once and maps every failure to a NetworkError.
func fetchPage(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	res, err := engine.FetchResource(ctx, rawURL, headers)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	if !res.OK {
		return nil, &NetworkError{URL: rawURL, StatusCode: res.StatusCode}
	}
	return res.RawBody, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// SelectTrack picks one caption track deterministically. tracks must be non-empty.
//  1. With lang set: first manual track in lang, then first auto-generated track in lang.
//  2. First manual track.
//  3. First auto-generated track.
//
// Tracks that need a PoToken are only considered when nothing else is offered.
func SelectTrack(tracks []CaptionTrack, lang string) CaptionTrack {
	usable := make([]CaptionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		usable = tracks
	}

	if lang != "" {
		for _, kind := range []TrackKind{TrackStandard, TrackAutoGenerated} {
			for _, t := range usable {
				if t.Kind == kind && strings.EqualFold(t.LanguageCode, lang) {
					return t
				}
			}
		}
	}
	for _, t := range usable {
		if t.Kind == TrackStandard {
			return t
		}
	}
	return usable[0]
}
