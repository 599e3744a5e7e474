// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for thirtydays.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: lessons_dir, session_name, etc.
//   - Environment variables: THIRTYDAYS_LESSONS_DIR, THIRTYDAYS_SESSION_NAME, etc.
//   - Command-line flags: --lessons_dir, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: "30 Days of AI", Desc: "Site name shown in the sidebar and page titles"},
	{Name: "tagline", Default: "A coding challenge to help you get started building AI apps.", Desc: "Short blurb under the sidebar title"},

	// Lesson content layout
	{Name: "lessons_dir", Default: "./content/app", Desc: "Directory of lesson code files (day<N><ext>)"},
	{Name: "explanations_dir", Default: "./content/md", Desc: "Directory of lesson explanation markdown files (day<N>.md)"},
	{Name: "lesson_prefix", Default: "day", Desc: "Lesson filename prefix before the day number"},
	{Name: "lesson_ext", Default: ".go", Desc: "Lesson code file extension, including the dot"},

	// Sessions
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "thirtydays-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// View-event logging
	{Name: "view_log", Default: "log", Desc: "Lesson view logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (used when view_log is 'all' or 'db')"},
	{Name: "mongo_database", Default: "thirtydays", Desc: "MongoDB database name"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL of the deployed site"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "THIRTYDAYS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName: appValues.String("site_name"),
		Tagline:  appValues.String("tagline"),

		LessonsDir:      appValues.String("lessons_dir"),
		ExplanationsDir: appValues.String("explanations_dir"),
		LessonPrefix:    appValues.String("lesson_prefix"),
		LessonExt:       appValues.String("lesson_ext"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		ViewLog:       appValues.String("view_log"),
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// A missing lessons directory is deliberately NOT validated here: an empty
// or absent directory is the valid "nothing published yet" state and the
// site renders its welcome page for it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.ViewLog {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("view_log must be one of all, db, log, off (got %q)", appCfg.ViewLog)
	}

	if appCfg.LessonPrefix == "" {
		return fmt.Errorf("lesson_prefix must not be empty")
	}
	if appCfg.LessonExt == "" || !strings.HasPrefix(appCfg.LessonExt, ".") {
		return fmt.Errorf("lesson_ext must start with a dot (got %q)", appCfg.LessonExt)
	}

	// Only check the Mongo URI when a database is actually going to be used.
	if appCfg.ViewLogWantsDB() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	return nil
}
