package engine

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

var noiseSelectors = strings.Join([]string{
	"script", "style", "noscript", "iframe", "svg", "template",
}, ", ")

var whitespaceRe = regexp.MustCompile(`[ \t]+`)

// HTMLToMarkdown converts an HTML document to readable markdown.
// It never fails: readability extraction falls back to the whole document
// with scripts and styles removed, and a failed markdown conversion falls
// back to the document's plain text.
func HTMLToMarkdown(html, pageURL string) string {
	content := extractMainContent(html, pageURL)

	var opts []converter.ConvertOptionFunc
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts = append(opts, converter.WithDomain(u.Scheme+"://"+u.Host))
	}

	md, err := htmltomarkdown.ConvertString(content, opts...)
	if err != nil {
		slog.Debug("markdown conversion failed, using plain text", slog.Any("error", err))
		return plainText(content)
	}
	return strings.TrimSpace(md)
}

// extractMainContent returns the readability article body, or the cleaned
// document when readability finds nothing.
func extractMainContent(html, pageURL string) string {
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		article, err := readability.FromReader(strings.NewReader(html), u)
		if err == nil && strings.TrimSpace(article.TextContent) != "" {
			return article.Content
		}
		if err != nil {
			slog.Debug("readability failed", slog.String("url", pageURL), slog.Any("error", err))
		}
	}
	return stripNoise(html)
}

// stripNoise removes non-content elements with goquery.
func stripNoise(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find(noiseSelectors).Remove()
	out, err := doc.Html()
	if err != nil {
		return html
	}
	return out
}

func plainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(CleanHTML(html))
	}
	doc.Find(noiseSelectors).Remove()

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
