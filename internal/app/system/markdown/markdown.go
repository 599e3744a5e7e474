// Package markdown renders explanation markdown to sanitized HTML for
// templates. GitHub Flavored Markdown with syntax highlighting, run
// through the HTML sanitizer afterwards.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dalemusser/thirtydays/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML is allowed through goldmark and then stripped of anything
// unsafe by the sanitizer, so inline markup in explanations keeps working.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Render converts markdown to sanitized HTML.
func Render(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return htmlsanitize.SanitizeHTML(buf.String()), nil
}
