package lessons_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/thirtydays/internal/app/features/lessons"
	"github.com/dalemusser/thirtydays/internal/testutil"
)

func TestLoadContent_SkipsHeaderAndExtractsSubtitle(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteLesson(t, 1,
		"// Day 1",
		"// Your first LLM call",
		"// ---",
		"package main",
		"",
		"func main() {}",
	)

	content, err := lessons.LoadContent(filepath.Join(dirs.Lessons, "day1.go"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}

	if content.Subtitle != "Your first LLM call" {
		t.Errorf("subtitle: got %q, want %q", content.Subtitle, "Your first LLM call")
	}
	want := "package main\n\nfunc main() {}"
	if content.Code != want {
		t.Errorf("code: got %q, want %q", content.Code, want)
	}
}

func TestLoadContent_HashCommentMarker(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteLesson(t, 2,
		"# Day 2",
		"# Streaming responses",
		"# ---",
		"print('hi')",
	)

	content, err := lessons.LoadContent(filepath.Join(dirs.Lessons, "day2.go"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if content.Subtitle != "Streaming responses" {
		t.Errorf("subtitle: got %q, want %q", content.Subtitle, "Streaming responses")
	}
}

func TestLoadContent_ShortFileHasEmptyBody(t *testing.T) {
	// Fewer than four lines: the fixed header skip leaves nothing to
	// display. Preserved behavior, not a bug.
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteLesson(t, 3, "// Day 3", "// Subtitle only")

	content, err := lessons.LoadContent(filepath.Join(dirs.Lessons, "day3.go"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if content.Subtitle != "Subtitle only" {
		t.Errorf("subtitle: got %q, want %q", content.Subtitle, "Subtitle only")
	}
	if content.Code != "" {
		t.Errorf("code: got %q, want empty body", content.Code)
	}
}

func TestLoadContent_SingleLineFile(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteLesson(t, 4, "// Day 4")

	content, err := lessons.LoadContent(filepath.Join(dirs.Lessons, "day4.go"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if content.Subtitle != "" || content.Code != "" {
		t.Errorf("got %+v, want empty subtitle and body", content)
	}
}

func TestLoadContent_MissingFile(t *testing.T) {
	_, err := lessons.LoadContent("/does/not/exist/day1.go")
	if err == nil {
		t.Fatal("expected error for missing code file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "/does/not/exist/day1.go") {
		t.Errorf("error should name the missing path, got %v", err)
	}
}

func TestLoadExplanation_SplitOnDelimiter(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteExplanation(t, 1, "The intro.\n---\nThe details.")

	expl, err := lessons.LoadExplanation(filepath.Join(dirs.Explanations, "day1.md"))
	if err != nil {
		t.Fatalf("LoadExplanation: %v", err)
	}
	if expl.Intro != "The intro." {
		t.Errorf("intro: got %q", expl.Intro)
	}
	if expl.Details != "The details." {
		t.Errorf("details: got %q", expl.Details)
	}
}

func TestLoadExplanation_NoDelimiter(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteExplanation(t, 2, "Just an intro, nothing else.")

	expl, err := lessons.LoadExplanation(filepath.Join(dirs.Explanations, "day2.md"))
	if err != nil {
		t.Fatalf("LoadExplanation: %v", err)
	}
	if expl.Intro != "Just an intro, nothing else." {
		t.Errorf("intro: got %q", expl.Intro)
	}
	if expl.Details != "" {
		t.Errorf("details: got %q, want empty", expl.Details)
	}
}

func TestLoadExplanation_OnlyFirstDelimiterSplits(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)
	dirs.WriteExplanation(t, 3, "intro\n---\ndetails part one\n---\ndetails part two")

	expl, err := lessons.LoadExplanation(filepath.Join(dirs.Explanations, "day3.md"))
	if err != nil {
		t.Fatalf("LoadExplanation: %v", err)
	}
	if expl.Intro != "intro" {
		t.Errorf("intro: got %q", expl.Intro)
	}
	if !strings.Contains(expl.Details, "part one") || !strings.Contains(expl.Details, "part two") {
		t.Errorf("details should keep later delimiters intact, got %q", expl.Details)
	}
}

func TestLoadExplanation_MissingFileIsEmpty(t *testing.T) {
	expl, err := lessons.LoadExplanation("/does/not/exist/day9.md")
	if err != nil {
		t.Fatalf("missing explanation must not be an error, got %v", err)
	}
	if expl.Intro != "" || expl.Details != "" {
		t.Errorf("got %+v, want empty explanation", expl)
	}
}

func TestLoadExplanation_ReadFailureIsError(t *testing.T) {
	dirs := testutil.NewLessonDirs(t)

	// A directory at the explanation path fails the read with something
	// other than a missing-file error; that must come back to the caller
	// so it can warn, unlike the silent missing-file case.
	path := filepath.Join(dirs.Explanations, "day5.md")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := lessons.LoadExplanation(path)
	if err == nil {
		t.Fatal("expected error for unreadable explanation file")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should not look like a missing file, got %v", err)
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := lessons.Config{
		LessonsDir:      "/content/app",
		ExplanationsDir: "/content/md",
		Prefix:          "day",
		Ext:             ".go",
	}

	if got := cfg.CodePath(7); got != filepath.Join("/content/app", "day7.go") {
		t.Errorf("CodePath: got %q", got)
	}
	if got := cfg.ExplanationPath(7); got != filepath.Join("/content/md", "day7.md") {
		t.Errorf("ExplanationPath: got %q", got)
	}
}
