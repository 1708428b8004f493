package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		window        PaginationWindow
		wantPage      string
		wantRemaining int
	}{
		{"start 5 max 3", "abcdefgh", PaginationWindow{StartIndex: 5, MaxLength: 3}, "fgh", 0},
		{"start 3 max 3", "abcdefgh", PaginationWindow{StartIndex: 3, MaxLength: 3}, "def", 2},
		{"whole", "abcdefgh", PaginationWindow{StartIndex: 0, MaxLength: 100}, "abcdefgh", 0},
		{"start beyond length", "abc", PaginationWindow{StartIndex: 10, MaxLength: 5}, "", 0},
		{"max zero", "abcdefgh", PaginationWindow{StartIndex: 2, MaxLength: 0}, "", 6},
		{"negative start", "abc", PaginationWindow{StartIndex: -4, MaxLength: 2}, "ab", 1},
		{"negative max", "abc", PaginationWindow{StartIndex: 0, MaxLength: -1}, "", 3},
		{"runes not bytes", "привет мир", PaginationWindow{StartIndex: 7, MaxLength: 2}, "ми", 1},
		{"empty", "", PaginationWindow{StartIndex: 0, MaxLength: 10}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, remaining := Paginate(tt.content, tt.window)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestPaginate_Idempotent(t *testing.T) {
	for _, content := range []string{"", "abc", "abcdefghijklmnop", "日本語のテキストです"} {
		for _, maxLen := range []int{0, 1, 3, 8, 100} {
			w := PaginationWindow{StartIndex: 0, MaxLength: maxLen}
			once, _ := Paginate(content, w)
			twice, remaining := Paginate(once, w)
			assert.Equal(t, once, twice, "content=%q max=%d", content, maxLen)
			assert.Zero(t, remaining)
		}
	}
}

func TestPaginate_RemainingLength(t *testing.T) {
	content := "the quick brown fox jumps over the lazy dog"
	for start := 0; start <= len(content)+2; start += 5 {
		for maxLen := 0; maxLen <= 50; maxLen += 7 {
			page, remaining := Paginate(content, PaginationWindow{StartIndex: start, MaxLength: maxLen})
			afterStart := max(len(content)-start, 0)
			assert.Equal(t, max(0, afterStart-len(page)), remaining)
		}
	}
}
