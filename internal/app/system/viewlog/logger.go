// Package viewlog records lesson view events. Events go to structured
// logs (zap), to MongoDB (via the viewevents store), to both, or
// nowhere, depending on configuration.
package viewlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/thirtydays/internal/app/store/viewevents"
	"go.uber.org/zap"
)

// Config holds view logging configuration.
type Config struct {
	// Mode controls where lesson views are recorded.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Mode string
}

// Logger provides convenience methods for logging view events.
type Logger struct {
	store  *viewevents.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new view Logger. The store may be nil when the mode does
// not write to the database.
func New(store *viewevents.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for reverse proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// LessonViewed records that a visitor viewed the lesson for the given
// day. If the logger is nil, this is a no-op (allows tests to pass a nil
// view logger).
func (l *Logger) LessonViewed(ctx context.Context, r *http.Request, day int, visitorID string) {
	if l == nil || l.config.Mode == "off" {
		return
	}

	ev := viewevents.Event{
		Day:       day,
		VisitorID: visitorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
	}

	if l.config.Mode == "all" || l.config.Mode == "log" {
		l.zapLog.Info("lesson viewed",
			zap.Int("day", ev.Day),
			zap.String("visitor_id", ev.VisitorID),
			zap.String("ip", ev.IP),
		)
	}

	if (l.config.Mode == "all" || l.config.Mode == "db") && l.store != nil {
		if err := l.store.Log(ctx, ev); err != nil {
			l.zapLog.Error("failed to store view event",
				zap.Error(err),
				zap.Int("day", ev.Day),
			)
		}
	}
}
