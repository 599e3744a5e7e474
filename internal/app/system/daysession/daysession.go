// Package daysession manages the visitor's session cookie: the last day
// they selected and an anonymous visitor id used for view logging.
//
// The stored selection is read out and passed into selection.Reconcile as
// a plain value, keeping reconciliation pure; this package owns the
// cookie plumbing only.
package daysession

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/thirtydays/internal/app/system/selection"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	dayKey     = "day_selection"
	visitorKey = "visitor_id"
)

// Manager wraps a gorilla CookieStore for the thirtydays session.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager creates the session manager. The key signs the session
// cookie; name is the cookie name; domain may be blank for the current
// host. Secure cookies should be enabled in production.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if key == "" {
		return nil, fmt.Errorf("session key must not be empty")
	}

	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   0, // session cookie: the selection persists for one browsing session
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// StoredDay returns the selection persisted in the visitor's session, or
// selection.None when the session has none. A cookie that fails to
// decode (e.g. after a key rotation) is treated as no stored selection.
func (m *Manager) StoredDay(r *http.Request) selection.Selection {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Debug("session decode failed; treating as empty", zap.Error(err))
		return selection.None
	}
	day, ok := sess.Values[dayKey].(int)
	if !ok {
		return selection.None
	}
	return selection.Pick(day)
}

// SaveDay persists the authoritative selection into the session. An
// absent selection clears any stored value.
func (m *Manager) SaveDay(w http.ResponseWriter, r *http.Request, sel selection.Selection) error {
	sess, _ := m.store.Get(r, m.name)
	if sel.Valid {
		sess.Values[dayKey] = sel.Day
	} else {
		delete(sess.Values, dayKey)
	}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// VisitorID returns the anonymous visitor id from the session, creating
// and persisting one on first sight. The id ties a session's view events
// together without identifying anyone.
func (m *Manager) VisitorID(w http.ResponseWriter, r *http.Request) string {
	sess, _ := m.store.Get(r, m.name)
	if id, ok := sess.Values[visitorKey].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values[visitorKey] = id
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("could not persist visitor id", zap.Error(err))
	}
	return id
}
