package selection_test

import (
	"testing"

	"github.com/dalemusser/thirtydays/internal/app/system/selection"
)

func TestReconcile_EmptyCatalog(t *testing.T) {
	// An empty catalog always yields an absent selection, regardless of
	// the other inputs.
	cases := []struct {
		name   string
		param  string
		stored selection.Selection
	}{
		{"no inputs", "", selection.None},
		{"url param set", "3", selection.None},
		{"stored set", "", selection.Pick(2)},
		{"both set", "5", selection.Pick(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := selection.Reconcile(nil, tc.param, tc.stored)
			if got.Valid {
				t.Errorf("Reconcile(nil, %q, %+v) = %+v, want None", tc.param, tc.stored, got)
			}
		})
	}
}

func TestReconcile_DefaultsToFirst(t *testing.T) {
	got := selection.Reconcile([]int{2, 5, 9}, "", selection.None)
	if !got.Valid || got.Day != 2 {
		t.Errorf("got %+v, want day 2", got)
	}
}

func TestReconcile_URLParamMember(t *testing.T) {
	got := selection.Reconcile([]int{1, 2, 3}, "3", selection.None)
	if !got.Valid || got.Day != 3 {
		t.Errorf("got %+v, want day 3", got)
	}
}

func TestReconcile_URLParamFallsBack(t *testing.T) {
	cases := []struct {
		name  string
		param string
	}{
		{"not in catalog", "7"},
		{"non-numeric", "abc"},
		{"empty", ""},
		{"whitespace", "   "},
		{"trailing junk", "2x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := selection.Reconcile([]int{1, 2, 3}, tc.param, selection.None)
			if !got.Valid || got.Day != 1 {
				t.Errorf("Reconcile(catalog, %q, None) = %+v, want first member 1", tc.param, got)
			}
		})
	}
}

func TestReconcile_URLParamOverridesStored(t *testing.T) {
	// Clicking a sidebar link while a different day is stored must land
	// on the linked day: the parameter is the interactive action.
	got := selection.Reconcile([]int{1, 2, 3}, "3", selection.Pick(2))
	if !got.Valid || got.Day != 3 {
		t.Errorf("got %+v, want day 3 from url param", got)
	}
}

func TestReconcile_StoredKeptOnBareVisit(t *testing.T) {
	got := selection.Reconcile([]int{1, 2, 3}, "", selection.Pick(2))
	if !got.Valid || got.Day != 2 {
		t.Errorf("got %+v, want stored day 2", got)
	}
}

func TestReconcile_StoredKeptOnBadParam(t *testing.T) {
	// A parameter that cannot select anything leaves the stored
	// selection in charge.
	for _, param := range []string{"abc", "7"} {
		got := selection.Reconcile([]int{1, 2, 3}, param, selection.Pick(2))
		if !got.Valid || got.Day != 2 {
			t.Errorf("Reconcile(catalog, %q, stored 2) = %+v, want stored day 2", param, got)
		}
	}
}

func TestReconcile_StoredInvalidReplacedByParam(t *testing.T) {
	got := selection.Reconcile([]int{1, 2, 3}, "3", selection.Pick(9))
	if !got.Valid || got.Day != 3 {
		t.Errorf("got %+v, want day 3 from url param", got)
	}
}

func TestReconcile_StoredInvalidReplacedByDefault(t *testing.T) {
	got := selection.Reconcile([]int{1, 2, 3}, "", selection.Pick(9))
	if !got.Valid || got.Day != 1 {
		t.Errorf("got %+v, want default day 1", got)
	}
}
