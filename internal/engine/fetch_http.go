package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// FetchResult is the outcome of a single GET. Produced per call and discarded.
type FetchResult struct {
	OK          bool
	StatusCode  int
	ContentType string // raw Content-Type header; empty when absent
	Headers     http.Header
	RawBody     []byte
	Body        string // RawBody decoded to UTF-8; empty for image responses
}

// MediaType returns the lowercased media type without parameters.
func (r *FetchResult) MediaType() string {
	return mediaType(r.ContentType)
}

// newFetchClient creates a per-call HTTP client. Keep-alives are disabled so
// no connection outlives the call that opened it.
func newFetchClient() *http.Client {
	maxRedirects := cfg.maxRedirects()
	return &http.Client{
		Timeout: cfg.fetchTimeout(),
		Transport: newCompressionTransport(&http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DisableKeepAlives:   true,
			TLSHandshakeTimeout: 15 * time.Second,
			ForceAttemptHTTP2:   true,
		}),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// FetchResource performs one HTTP GET. Transport-level failures (DNS, TLS,
// timeout, cancellation) are returned as errors; any HTTP status, including
// non-2xx, is reported through FetchResult.
func FetchResource(ctx context.Context, rawURL string, headers map[string]string) (*FetchResult, error) {
	metrics.HTTPRequests.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := newFetchClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := readResponseBody(resp.Body, cfg.maxBodyBytes())
	if err != nil {
		return nil, err
	}

	res := &FetchResult{
		OK:          resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Headers:     resp.Header,
		RawBody:     raw,
	}
	if !strings.HasPrefix(res.MediaType(), "image/") {
		res.Body = decodeText(raw, res.ContentType)
	}
	return res, nil
}

// ErrBodyTooLarge is returned when a response exceeds Config.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

func readResponseBody(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, limit)
	}
	return data, nil
}

// decodeText converts raw bytes to UTF-8 using the declared charset, a BOM,
// an HTML meta tag, or UTF-8 validity, in that order.
func decodeText(raw []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

func userAgent() string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return RandomUserAgent()
}
