package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	HTTPRequests              atomic.Int64
	FetchRequests             atomic.Int64
	FetchErrors               atomic.Int64
	FetchImages               atomic.Int64
	FetchUnsupported          atomic.Int64
	YouTubeTranscriptRequests atomic.Int64
	YouTubeTranscriptErrors   atomic.Int64
}

var metricKeys = []string{
	"http_requests",
	"fetch_requests", "fetch_errors", "fetch_images", "fetch_unsupported",
	"youtube_transcript_requests", "youtube_transcript_errors",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"http_requests":               metrics.HTTPRequests.Load(),
		"fetch_requests":              metrics.FetchRequests.Load(),
		"fetch_errors":                metrics.FetchErrors.Load(),
		"fetch_images":                metrics.FetchImages.Load(),
		"fetch_unsupported":           metrics.FetchUnsupported.Load(),
		"youtube_transcript_requests": metrics.YouTubeTranscriptRequests.Load(),
		"youtube_transcript_errors":   metrics.YouTubeTranscriptErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrYouTubeTranscript()      { metrics.YouTubeTranscriptRequests.Add(1) }
func IncrYouTubeTranscriptError() { metrics.YouTubeTranscriptErrors.Add(1) }
