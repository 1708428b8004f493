package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimedText_Legacy(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0.5" dur="2.25">It&amp;#39;s a test</text>
<text start="2.75" dur="1">Tom &amp;amp; Jerry</text>
<text start="3" dur="0.5">   </text>
<text start="4.1" dur="1.9">line one
line two</text>
<text start="6" dur="1">&lt;font color=&quot;#fff&quot;&gt;styled&lt;/font&gt;</text>
</transcript>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, TranscriptLine{Text: "It's a test", OffsetMillis: 500, DurationMillis: 2250}, lines[0])
	assert.Equal(t, "Tom & Jerry", lines[1].Text)
	assert.Equal(t, int64(2750), lines[1].OffsetMillis)
	assert.Equal(t, "line one line two", lines[2].Text)
	assert.Equal(t, int64(4100), lines[2].OffsetMillis)
	assert.Equal(t, "styled", lines[3].Text)
}

func TestParseTimedText_Format3(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8" ?><timedtext format="3">
<body>
<p t="0" d="1500"><s>Hello</s><s t="400"> world</s></p>
<p t="1500" d="10" a="1">
</p>
<p t="3661000" d="2000">it&#39;s late</p>
</body>
</timedtext>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, TranscriptLine{Text: "Hello world", OffsetMillis: 0, DurationMillis: 1500}, lines[0])
	assert.Equal(t, TranscriptLine{Text: "it's late", OffsetMillis: 3661000, DurationMillis: 2000}, lines[1])
}

func TestParseTimedText_AngleBracketsKept(t *testing.T) {
	doc := `<transcript>
<text start="0" dur="1">x &lt; 3 but y &gt; 2</text>
<text start="1" dur="1">if a &amp;lt; b and c &amp;gt; d then</text>
<text start="2" dur="1">&lt;i&gt;whispers&lt;/i&gt; a -&gt; b</text>
</transcript>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "x < 3 but y > 2", lines[0].Text)
	assert.Equal(t, "if a < b and c > d then", lines[1].Text)
	assert.Equal(t, "whispers a -> b", lines[2].Text)
}

func TestParseTimedText_NoEntries(t *testing.T) {
	lines, err := ParseTimedText([]byte(`<html><body>consent</body></html>`))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseTimedText_OrderPreserved(t *testing.T) {
	doc := `<transcript>
<text start="1" dur="1">a</text>
<text start="1" dur="1">b</text>
<text start="5" dur="1">c</text>
</transcript>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	var texts []string
	for i, l := range lines {
		texts = append(texts, l.Text)
		if i > 0 {
			assert.GreaterOrEqual(t, l.OffsetMillis, lines[i-1].OffsetMillis)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

func TestParseTimedText_Invalid(t *testing.T) {
	_, err := ParseTimedText(nil)
	assert.Error(t, err)

	_, err = ParseTimedText([]byte("   "))
	assert.Error(t, err)

	_, err = ParseTimedText([]byte("<transcript><text start=\"1\">unterminated"))
	assert.Error(t, err)
}

func TestSecondsToMillis(t *testing.T) {
	assert.Equal(t, int64(0), secondsToMillis(""))
	assert.Equal(t, int64(0), secondsToMillis("abc"))
	assert.Equal(t, int64(0), secondsToMillis("-3"))
	assert.Equal(t, int64(1234), secondsToMillis("1.234"))
}
