// internal/app/features/lessons/types.go
package lessons

import (
	"fmt"
	"html/template"
)

// dayLinkVM is one sidebar entry.
type dayLinkVM struct {
	Day    int
	Label  string // "Day N"
	URL    string // "/?day=N"
	Active bool
}

// sidebarVM is the navigation shared by the lesson and welcome pages.
type sidebarVM struct {
	SiteName string
	Tagline  string
	Days     []dayLinkVM
}

// lessonVM is the view model for the lesson page.
type lessonVM struct {
	sidebarVM
	Title       string
	DisplayName string // "Day N"
	Subtitle    string
	Intro       template.HTML
	Code        string
	Details     template.HTML
	HasDetails  bool
	Warning     string // non-fatal explanation load failure, shown as a banner
}

// welcomeVM is the view model for the welcome page shown when no lesson
// files have been published yet.
type welcomeVM struct {
	sidebarVM
	Title string
}

// formatDay formats the number (e.g., 2) as a display string (e.g., "Day 2").
func formatDay(day int) string {
	return fmt.Sprintf("Day %d", day)
}
