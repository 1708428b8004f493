package sources

import (
	"fmt"
	"strings"
)

// FormatTimestamp renders an offset as h:mm:ss, or m:ss under one hour.
// Sub-second precision is truncated. durationMillis does not change the
// output; it is accepted so callers can pass a TranscriptLine's fields as-is.
func FormatTimestamp(offsetMillis, durationMillis int64) string {
	total := max(offsetMillis, 0) / 1000
	h, m, s := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatTranscript renders a transcript as a title heading followed by one
// "[timestamp] text" line per entry.
func FormatTranscript(t *Transcript) string {
	var sb strings.Builder
	title := t.Title
	if title == "" {
		title = t.VideoID
	}
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for i, l := range t.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%s] %s", FormatTimestamp(l.OffsetMillis, l.DurationMillis), l.Text)
	}
	return sb.String()
}
