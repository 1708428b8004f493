package sources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		offset int64
		want   string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{61000, "1:01"},
		{599999, "9:59"},
		{3599999, "59:59"},
		{3600000, "1:00:00"},
		{3661000, "1:01:01"},
		{36061500, "10:01:01"},
		{-5000, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.offset, 0))
		})
	}
}

func TestFormatTimestamp_HoursComponent(t *testing.T) {
	withHours := FormatTimestamp(3661000, 0)
	withoutHours := FormatTimestamp(61000, 0)

	assert.NotEqual(t, withHours, withoutHours)
	assert.Equal(t, 2, strings.Count(withHours, ":"))
	assert.Equal(t, 1, strings.Count(withoutHours, ":"))
}

func TestFormatTimestamp_DurationIgnored(t *testing.T) {
	assert.Equal(t, FormatTimestamp(61000, 0), FormatTimestamp(61000, 123456))
}

func TestFormatTranscript(t *testing.T) {
	tr := &Transcript{
		VideoID: "abc12345678",
		Title:   "Demo",
		Lines: []TranscriptLine{
			{Text: "hello", OffsetMillis: 0, DurationMillis: 1500},
			{Text: "world", OffsetMillis: 3661000, DurationMillis: 2000},
		},
	}
	assert.Equal(t, "# Demo\n\n[0:00] hello\n[1:01:01] world", FormatTranscript(tr))

	tr.Title = ""
	assert.True(t, strings.HasPrefix(FormatTranscript(tr), "# abc12345678\n"))
}
