package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer  goldmark.Markdown
	quotePolicy *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	// Quotes are a single line of prose: inline emphasis and links only.
	quotePolicy = bluemonday.NewPolicy()
	quotePolicy.AllowElements("p", "em", "strong", "code", "del", "br")
	quotePolicy.AllowStandardURLs()
	quotePolicy.AllowAttrs("href").OnElements("a")
	quotePolicy.RequireNoFollowOnLinks(true)
	quotePolicy.AddTargetBlankToFullyQualifiedLinks(true)
}

// RenderMarkdown converts a quote's markdown to sanitized HTML.
// Returns empty string for blank input.
func RenderMarkdown(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return quotePolicy.Sanitize(src)
	}

	return strings.TrimSpace(quotePolicy.Sanitize(buf.String()))
}
