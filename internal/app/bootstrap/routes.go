// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/thirtydays/internal/app/features/errors"
	healthfeature "github.com/dalemusser/thirtydays/internal/app/features/health"
	lessonsfeature "github.com/dalemusser/thirtydays/internal/app/features/lessons"
	"github.com/dalemusser/thirtydays/internal/app/store/viewevents"
	"github.com/dalemusser/thirtydays/internal/app/system/daysession"
	"github.com/dalemusser/thirtydays/internal/app/system/viewlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, and mounts the feature routers: the lesson browser
// at the root, health, and static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := daysession.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// View-event logging: store is nil unless view_log needs the database.
	// statsStore is only assigned from a non-nil store so the handler's
	// interface value stays nil when stats are unavailable.
	var viewStore *viewevents.Store
	var statsStore lessonsfeature.StatsStore
	if deps.MongoDatabase != nil {
		viewStore = viewevents.New(deps.MongoDatabase)
		statsStore = viewStore
	}
	viewLogger := viewlog.New(viewStore, logger, viewlog.Config{Mode: appCfg.ViewLog})

	r := chi.NewRouter()

	// Friendly error page for unknown paths
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.LessonsDir, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// The lesson browser owns the root: day selection, lesson pages,
	// the welcome page, and per-day view stats.
	lessonsHandler := lessonsfeature.NewHandler(lessonsfeature.Config{
		SiteName:        appCfg.SiteName,
		Tagline:         appCfg.Tagline,
		LessonsDir:      appCfg.LessonsDir,
		ExplanationsDir: appCfg.ExplanationsDir,
		Prefix:          appCfg.LessonPrefix,
		Ext:             appCfg.LessonExt,
	}, sessionMgr, viewLogger, statsStore, errLog, logger)
	r.Mount("/", lessonsfeature.Routes(lessonsHandler))

	return r, nil
}
