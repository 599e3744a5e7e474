// internal/app/features/lessons/handler.go
package lessons

import (
	"context"

	uierrors "github.com/dalemusser/thirtydays/internal/app/features/errors"
	"github.com/dalemusser/thirtydays/internal/app/store/viewevents"
	"github.com/dalemusser/thirtydays/internal/app/system/daysession"
	"github.com/dalemusser/thirtydays/internal/app/system/viewlog"
	"go.uber.org/zap"
)

// Config holds the content layout and site identity for the lesson browser.
type Config struct {
	SiteName string
	Tagline  string

	LessonsDir      string // code sample files: <Prefix><N><Ext>
	ExplanationsDir string // explanation files: <Prefix><N>.md
	Prefix          string
	Ext             string
}

// StatsStore provides the aggregate view-event queries behind GET /stats.
// *viewevents.Store satisfies it.
type StatsStore interface {
	CountsByDay(ctx context.Context) ([]viewevents.DayCount, error)
	Recent(ctx context.Context, limit int64) ([]viewevents.Event, error)
}

// Handler owns the lesson browsing handlers.
type Handler struct {
	Cfg      Config
	Sessions *daysession.Manager
	Views    *viewlog.Logger
	Stats    StatsStore // nil when view logging has no database
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Handler for the lesson browser.
func NewHandler(cfg Config, sessions *daysession.Manager, views *viewlog.Logger, stats StatsStore, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Cfg:      cfg,
		Sessions: sessions,
		Views:    views,
		Stats:    stats,
		ErrLog:   errLog,
		Log:      logger,
	}
}
