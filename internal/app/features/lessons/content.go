// internal/app/features/lessons/content.go
package lessons

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Every lesson code file starts with a fixed header block: line 1 is the
// day marker, line 2 the subtitle, line 3 a separator. The displayed body
// starts at line 4. A file with fewer than four lines therefore renders
// an empty body; that is the intended behavior, not a bug.
const codeHeaderLines = 3

// Content is the displayable view of one lesson's code file.
type Content struct {
	Subtitle string // line 2 with its leading comment marker stripped
	Code     string // everything from line 4 onward
}

// Explanation is the split explanation file for a lesson. Details is
// empty when the file had no delimiter (or no file exists).
type Explanation struct {
	Intro   string
	Details string
}

// explanationDelimiter splits an explanation into the always-shown intro
// and the collapsible details. Only the first occurrence counts.
const explanationDelimiter = "---"

// CodePath returns the code file path for a day.
func (c Config) CodePath(day int) string {
	return filepath.Join(c.LessonsDir, c.Prefix+strconv.Itoa(day)+c.Ext)
}

// ExplanationPath returns the explanation file path for a day.
func (c Config) ExplanationPath(day int) string {
	return filepath.Join(c.ExplanationsDir, c.Prefix+strconv.Itoa(day)+".md")
}

// LoadContent reads and parses a lesson code file. A missing file is an
// error: the catalog said this day exists, so the visitor gets an error
// page naming the path.
func LoadContent(path string) (Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read lesson file %s: %w", path, err)
	}

	lines := splitLines(string(raw))

	var subtitle string
	if len(lines) > 1 {
		subtitle = stripCommentMarker(lines[1])
	}

	var code string
	if len(lines) > codeHeaderLines {
		code = strings.Join(lines[codeHeaderLines:], "\n")
	}

	return Content{Subtitle: subtitle, Code: code}, nil
}

// LoadExplanation reads and splits a lesson explanation file. A missing
// file is not an error; intro and details are simply empty. Any other
// read failure is returned so the caller can surface a non-fatal warning
// while the code content still displays.
func LoadExplanation(path string) (Explanation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Explanation{}, nil
		}
		return Explanation{}, fmt.Errorf("read explanation file %s: %w", path, err)
	}
	return splitExplanation(string(raw)), nil
}

// splitExplanation splits on the first delimiter occurrence. With no
// delimiter the whole text is the intro and details stays empty.
func splitExplanation(s string) Explanation {
	parts := strings.SplitN(s, explanationDelimiter, 2)
	expl := Explanation{Intro: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		expl.Details = strings.TrimSpace(parts[1])
	}
	return expl
}

// stripCommentMarker removes the leading comment marker from a subtitle
// line. Lessons may be Go ("// ...") or script-style ("# ...") files.
func stripCommentMarker(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "/# "))
}

// splitLines splits on newlines, tolerating CRLF content.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
