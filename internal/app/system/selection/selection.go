// Package selection reconciles the three sources of truth for the
// currently shown day — the catalog of published lessons, the ?day= URL
// parameter, and the selection stored in the visitor's session — into one
// authoritative value.
//
// Reconcile is a pure function: handlers own all I/O (building the
// catalog, reading the session, redirecting) and pass plain values in.
package selection

import (
	"strconv"
	"strings"
)

// Selection is the day currently chosen for display. Valid is false when
// no day is selected, which only happens with an empty catalog.
type Selection struct {
	Day   int
	Valid bool
}

// None is the absent selection.
var None = Selection{}

// Pick returns a valid selection for day n.
func Pick(n int) Selection {
	return Selection{Day: n, Valid: true}
}

// Reconcile merges the catalog, an optional URL parameter, and a
// previously stored selection into the authoritative selection.
//
// Rules, in order:
//  1. A URL parameter that parses and is a catalog member wins. Sidebar
//     links are how the visitor changes days, so the parameter is the
//     interactive action and must beat the stored value. Malformed or
//     out-of-catalog parameters are ignored.
//  2. Otherwise a stored selection still in the catalog is kept, so a
//     bare "/" visit resumes where the visitor left off.
//  3. Otherwise the first catalog entry is the default.
//
// An empty catalog always yields None regardless of the other inputs.
func Reconcile(catalog []int, urlParam string, stored Selection) Selection {
	if len(catalog) == 0 {
		return None
	}

	if day, ok := parseDay(urlParam); ok && contains(catalog, day) {
		return Pick(day)
	}
	if stored.Valid && contains(catalog, stored.Day) {
		return stored
	}
	return Pick(catalog[0])
}

// parseDay parses a string-encoded day number. Empty or non-numeric
// values are treated as absent, not as errors.
func parseDay(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func contains(catalog []int, day int) bool {
	for _, d := range catalog {
		if d == day {
			return true
		}
	}
	return false
}
