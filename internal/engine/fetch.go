package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultMaxLength is the max_length used when the caller omits it.
const DefaultMaxLength = 2000

// HTTPStatusError reports a fetch that completed with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	body := TruncateRunes(strings.TrimSpace(e.Body), 2000, "...")
	if body == "" {
		return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: status %d\n%s", e.URL, e.StatusCode, body)
}

// NormalizeURL prepends https:// when the input has no explicit http(s) scheme.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}

// FetchURL runs the content fetch pipeline: normalize, fetch once, classify,
// convert and paginate.
func FetchURL(ctx context.Context, in FetchURLInput) (out *FetchURLOutput, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	window := PaginationWindow{StartIndex: 0, MaxLength: DefaultMaxLength}
	if in.StartIndex != nil {
		window.StartIndex = *in.StartIndex
	}
	if in.MaxLength != nil {
		window.MaxLength = *in.MaxLength
	}

	resolved := NormalizeURL(in.URL)
	res, err := FetchResource(ctx, resolved, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", resolved, err)
	}
	if !res.OK {
		body := res.Body
		if body == "" {
			body = string(res.RawBody)
		}
		return nil, &HTTPStatusError{URL: resolved, StatusCode: res.StatusCode, Body: body}
	}

	mt := res.MediaType()
	switch ClassifyContentType(res.ContentType) {
	case ContentUnsupported:
		metrics.FetchUnsupported.Add(1)
		if mt == "" {
			mt = "<none>"
		}
		return &FetchURLOutput{
			Kind:        KindNotice,
			ResolvedURL: resolved,
			Content:     "Unsupported mime type: " + mt,
		}, nil

	case ContentImage:
		metrics.FetchImages.Add(1)
		return &FetchURLOutput{
			Kind:        KindImage,
			ResolvedURL: resolved,
			MIMEType:    mt,
			Data:        res.RawBody,
		}, nil

	case ContentHTML:
		content := res.Body
		if !in.Raw {
			content = HTMLToMarkdown(res.Body, resolved)
		}
		return paginated(resolved, content, window), nil

	default:
		return paginated(resolved, res.Body, window), nil
	}
}

func paginated(resolved, content string, w PaginationWindow) *FetchURLOutput {
	page, remaining := Paginate(content, w)
	slog.Debug("fetch_url paginated",
		slog.String("url", resolved),
		slog.Int("start_index", w.start()),
		slog.Int("remaining", remaining),
	)
	return &FetchURLOutput{
		Kind:            KindText,
		ResolvedURL:     resolved,
		StartIndex:      w.start(),
		RemainingLength: remaining,
		Content:         page,
	}
}

// FormatFetchText renders a text output as four header-prefixed lines:
// resolved URL, start index, remaining length, content.
func FormatFetchText(out *FetchURLOutput) string {
	return fmt.Sprintf("URL: %s\nStart index: %d\nRemaining length: %d\n%s",
		out.ResolvedURL, out.StartIndex, out.RemainingLength, out.Content)
}
