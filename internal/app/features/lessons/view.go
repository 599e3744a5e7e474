// internal/app/features/lessons/view.go
package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/thirtydays/internal/app/features/errors"
	"github.com/dalemusser/thirtydays/internal/app/system/markdown"
	"github.com/dalemusser/thirtydays/internal/app/system/selection"
	"github.com/dalemusser/thirtydays/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – lesson browser                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLesson runs the full per-request pipeline: rebuild the catalog,
// reconcile the selection from URL parameter and session, sync the URL,
// load the day's content, and render.
func (h *Handler) ServeLesson(w http.ResponseWriter, r *http.Request) {
	catalog, err := BuildCatalog(h.Cfg.LessonsDir, h.Cfg.Prefix, h.Cfg.Ext)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "catalog scan failed", err, "Could not read the lesson directory.", "/")
		return
	}

	param := r.URL.Query().Get("day")
	stored := h.Sessions.StoredDay(r)
	sel := selection.Reconcile(catalog, param, stored)

	if !sel.Valid {
		// Nothing published yet: welcome page, no redirect.
		h.serveWelcome(w, r)
		return
	}

	// Keep the address bar in sync with the authoritative selection. A
	// missing, malformed, or out-of-catalog ?day= redirects to the
	// canonical URL; the session is saved first so the selection
	// survives the round trip.
	canonical := strconv.Itoa(sel.Day)
	if param != canonical {
		if err := h.Sessions.SaveDay(w, r, sel); err != nil {
			h.Log.Warn("could not persist day selection", zap.Error(err))
		}
		http.Redirect(w, r, "/?day="+canonical, http.StatusSeeOther)
		return
	}

	if err := h.Sessions.SaveDay(w, r, sel); err != nil {
		h.Log.Warn("could not persist day selection", zap.Error(err))
	}
	visitorID := h.Sessions.VisitorID(w, r)

	content, err := LoadContent(h.Cfg.CodePath(sel.Day))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			uierrors.RenderNotFound(w, r, "Could not find file: "+h.Cfg.CodePath(sel.Day), "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "lesson file read failed", err, "An error occurred while trying to read the lesson file.", "/")
		return
	}

	vm := lessonVM{
		sidebarVM:   h.sidebar(catalog, sel.Day),
		Title:       h.Cfg.SiteName + " – " + formatDay(sel.Day),
		DisplayName: formatDay(sel.Day),
		Subtitle:    content.Subtitle,
		Code:        content.Code,
	}

	// The explanation is optional and its failure is non-fatal: the code
	// still displays, with a warning banner.
	expl, warn := LoadExplanation(h.Cfg.ExplanationPath(sel.Day))
	if warn != nil {
		h.Log.Warn("could not load explanation file", zap.Error(warn))
		vm.Warning = "Could not load the explanation for this lesson."
	}
	if expl.Intro != "" {
		if html, err := markdown.Render(expl.Intro); err != nil {
			h.Log.Warn("intro markdown render failed", zap.Error(err))
		} else {
			vm.Intro = html
		}
	}
	if expl.Details != "" {
		if html, err := markdown.Render(expl.Details); err != nil {
			h.Log.Warn("details markdown render failed", zap.Error(err))
		} else {
			vm.Details = html
			vm.HasDetails = html != ""
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	h.Views.LessonViewed(ctx, r, sel.Day, visitorID)

	templates.Render(w, r, "lesson_view", vm)
}

// serveWelcome renders the "nothing published yet" page.
func (h *Handler) serveWelcome(w http.ResponseWriter, r *http.Request) {
	vm := welcomeVM{
		sidebarVM: h.sidebar(nil, 0),
		Title:     "Welcome to " + h.Cfg.SiteName,
	}
	templates.Render(w, r, "welcome", vm)
}

// sidebar builds the day navigation for the current catalog.
func (h *Handler) sidebar(catalog []int, activeDay int) sidebarVM {
	days := make([]dayLinkVM, len(catalog))
	for i, d := range catalog {
		days[i] = dayLinkVM{
			Day:    d,
			Label:  formatDay(d),
			URL:    "/?day=" + strconv.Itoa(d),
			Active: d == activeDay,
		}
	}
	return sidebarVM{
		SiteName: h.Cfg.SiteName,
		Tagline:  h.Cfg.Tagline,
		Days:     days,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /stats – per-day view counts                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// recentViewsLimit caps the recent-events section of the stats payload.
const recentViewsLimit = 20

// ServeStats returns per-day view counts and the most recent view events
// as JSON. It is only available when view logging writes to the database.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	if h.Stats == nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	counts, err := h.Stats.CountsByDay(ctx)
	if err != nil {
		h.Log.Error("view count query failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "stats unavailable"})
		return
	}

	recent, err := h.Stats.Recent(ctx, recentViewsLimit)
	if err != nil {
		h.Log.Error("recent views query failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "stats unavailable"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"days":   counts,
		"recent": recent,
	})
}
