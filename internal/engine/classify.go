package engine

import "strings"

// ContentClassification is derived solely from the declared Content-Type.
type ContentClassification int

const (
	ContentUnsupported ContentClassification = iota
	ContentImage
	ContentHTML
	ContentText
)

func (c ContentClassification) String() string {
	switch c {
	case ContentImage:
		return "image"
	case ContentHTML:
		return "html"
	case ContentText:
		return "text"
	default:
		return "unsupported"
	}
}

// textApplicationTypes are application/* types whose bodies are readable text.
var textApplicationTypes = map[string]bool{
	"application/json":                  true,
	"application/ld+json":               true,
	"application/xml":                   true,
	"application/javascript":            true,
	"application/ecmascript":            true,
	"application/x-javascript":          true,
	"application/x-www-form-urlencoded": true,
	"application/yaml":                  true,
	"application/x-yaml":                true,
	"application/toml":                  true,
	"application/x-sh":                  true,
	"application/sql":                   true,
	"application/graphql":               true,
}

// ClassifyContentType maps a Content-Type header to a processing branch.
// A missing header is unsupported.
func ClassifyContentType(contentType string) ContentClassification {
	mt := mediaType(contentType)
	switch {
	case mt == "":
		return ContentUnsupported
	case strings.HasPrefix(mt, "image/"):
		return ContentImage
	case mt == "text/html" || mt == "application/xhtml+xml":
		return ContentHTML
	case strings.HasPrefix(mt, "text/"):
		return ContentText
	case textApplicationTypes[mt]:
		return ContentText
	case strings.HasSuffix(mt, "+json") || strings.HasSuffix(mt, "+xml"):
		return ContentText
	default:
		return ContentUnsupported
	}
}
