package sources

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short link", "https://youtu.be/abc12345678", "abc12345678"},
		{"short link with query", "https://youtu.be/abc12345678?t=42", "abc12345678"},
		{"watch", "https://www.youtube.com/watch?v=abc12345678", "abc12345678"},
		{"watch v not first", "https://www.youtube.com/watch?feature=share&v=abc12345678&t=1s", "abc12345678"},
		{"mobile", "https://m.youtube.com/watch?v=abc12345678", "abc12345678"},
		{"music", "https://music.youtube.com/watch?v=abc12345678&list=RD", "abc12345678"},
		{"embed", "https://www.youtube.com/embed/abc12345678", "abc12345678"},
		{"nocookie embed", "https://www.youtube-nocookie.com/embed/abc12345678", "abc12345678"},
		{"shorts", "https://www.youtube.com/shorts/abc12345678", "abc12345678"},
		{"live", "https://www.youtube.com/live/abc12345678?si=x", "abc12345678"},
		{"legacy v", "https://www.youtube.com/v/abc12345678", "abc12345678"},
		{"no scheme", "youtube.com/watch?v=a-b_c1234_6", "a-b_c1234_6"},
		{"bare id", "abc12345678", "abc12345678"},
		{"unrecognised url passes through", "https://vimeo.com/12345", "https://vimeo.com/12345"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.input); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
