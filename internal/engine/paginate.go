package engine

// PaginationWindow selects a substring of normalized content: slice from
// StartIndex to the end, then keep at most MaxLength characters.
// Both bounds count Unicode code points; negative values act as 0.
type PaginationWindow struct {
	StartIndex int
	MaxLength  int
}

func (w PaginationWindow) start() int { return max(w.StartIndex, 0) }

// Paginate applies w to content and returns the page plus the number of
// characters dropped by truncation.
func Paginate(content string, w PaginationWindow) (page string, remaining int) {
	runes := []rune(content)
	start := min(w.start(), len(runes))
	sliced := runes[start:]
	n := min(max(w.MaxLength, 0), len(sliced))
	return string(sliced[:n]), len(sliced) - n
}
