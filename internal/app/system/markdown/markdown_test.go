package markdown_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/thirtydays/internal/app/system/markdown"
)

func TestRender_Empty(t *testing.T) {
	got, err := markdown.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRender_Basic(t *testing.T) {
	got, err := markdown.Render("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(got)
	if !strings.Contains(html, "<h1") {
		t.Errorf("expected heading in output, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold text in output, got %q", html)
	}
}

func TestRender_GFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |"
	got, err := markdown.Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(got), "<table") {
		t.Errorf("expected GFM table rendered, got %q", got)
	}
}

func TestRender_StripsScript(t *testing.T) {
	got, err := markdown.Render("hello\n\n<script>alert('x')</script>")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(got), "<script") {
		t.Errorf("expected script stripped, got %q", got)
	}
}
