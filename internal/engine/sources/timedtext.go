package sources

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/anatolykoptev/go_fetch/internal/engine"
)

// TranscriptLine is one caption entry. Offsets are non-decreasing across a
// transcript but not necessarily contiguous.
type TranscriptLine struct {
	Text           string `json:"text"`
	OffsetMillis   int64  `json:"offset_ms"`
	DurationMillis int64  `json:"duration_ms"`
}

// ytTimedText covers both timed-text layouts YouTube serves:
// legacy <transcript><text start dur> (seconds) and
// format 3 <timedtext><body><p t d> (milliseconds).
type ytTimedText struct {
	Lines      []ytLine      `xml:"text"`
	Paragraphs []ytParagraph `xml:"body>p"`
}

type ytLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Inner string `xml:",innerxml"`
}

type ytParagraph struct {
	T     int64  `xml:"t,attr"`
	D     int64  `xml:"d,attr"`
	Inner string `xml:",innerxml"`
}

// ParseTimedText parses a timed-text document into lines in source order.
// Markup is stripped and entities decoded; entries with no text are dropped.
func ParseTimedText(data []byte) ([]TranscriptLine, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty timedtext document")
	}

	var tt ytTimedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	lines := make([]TranscriptLine, 0, len(tt.Lines)+len(tt.Paragraphs))
	for _, l := range tt.Lines {
		text := cleanCaptionText(l.Inner)
		if text == "" {
			continue
		}
		lines = append(lines, TranscriptLine{
			Text:           text,
			OffsetMillis:   secondsToMillis(l.Start),
			DurationMillis: secondsToMillis(l.Dur),
		})
	}
	for _, p := range tt.Paragraphs {
		text := cleanCaptionText(p.Inner)
		if text == "" {
			continue
		}
		lines = append(lines, TranscriptLine{
			Text:           text,
			OffsetMillis:   max(p.T, 0),
			DurationMillis: max(p.D, 0),
		})
	}
	return lines, nil
}

// styleTagRe matches the escaped styling tags auto captions carry once
// decoded (&lt;font color=..&gt;, &lt;i&gt;). Other angle brackets are text.
var styleTagRe = regexp.MustCompile(`(?i)</?(?:font|i|b|u)(?:\s[^>]*)?>`)

// cleanCaptionText strips real markup (<s>, <br/>) while the text is still
// escaped, then decodes entities and removes styling tags only.
func cleanCaptionText(inner string) string {
	text := engine.UnescapeHTML(engine.CleanHTML(inner))
	text = styleTagRe.ReplaceAllString(text, "")
	return engine.CollapseSpace(text)
}

func secondsToMillis(s string) int64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f * 1000))
}
