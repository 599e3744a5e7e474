// Package htmlsanitize strips unsafe markup from HTML produced from
// user-editable content, such as rendered explanation markdown.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows the formatting elements common in explanation text
// (paragraphs, emphasis, lists, tables, code blocks, links) and removes
// scripts, event handlers, and javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes and marks the result as safe for templates.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
