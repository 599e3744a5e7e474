package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// LessonDirs is a temporary content layout for catalog and content tests.
type LessonDirs struct {
	Lessons      string
	Explanations string
}

// NewLessonDirs creates empty temp lesson/explanation directories.
func NewLessonDirs(t *testing.T) LessonDirs {
	t.Helper()
	root := t.TempDir()
	dirs := LessonDirs{
		Lessons:      filepath.Join(root, "app"),
		Explanations: filepath.Join(root, "md"),
	}
	for _, d := range []string{dirs.Lessons, dirs.Explanations} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	return dirs
}

// WriteLesson writes a code file for the given day with the given lines.
func (d LessonDirs) WriteLesson(t *testing.T, day int, lines ...string) {
	t.Helper()
	WriteFile(t, d.Lessons, "day"+strconv.Itoa(day)+".go", strings.Join(lines, "\n"))
}

// WriteExplanation writes an explanation markdown file for the given day.
func (d LessonDirs) WriteExplanation(t *testing.T, day int, content string) {
	t.Helper()
	WriteFile(t, d.Explanations, "day"+strconv.Itoa(day)+".md", content)
}

// WriteFile writes an arbitrary file into dir.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
