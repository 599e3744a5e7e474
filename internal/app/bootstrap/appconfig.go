// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, log level); AppConfig is everything
// specific to the thirtydays site.
type AppConfig struct {
	// Site identity shown in the sidebar and page titles.
	SiteName string // e.g. "30 Days of AI"
	Tagline  string // short blurb rendered under the sidebar title

	// Lesson content layout on disk.
	LessonsDir      string // directory of code sample files (day<N><ext>)
	ExplanationsDir string // directory of explanation markdown files (day<N>.md)
	LessonPrefix    string // filename prefix before the day number (default "day")
	LessonExt       string // code file extension including the dot (default ".go")

	// Session management configuration.
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name (default: thirtydays-session)
	SessionDomain string // cookie domain (blank means current host)

	// View-event logging. Mode mirrors the audit switch used elsewhere in
	// our apps: "all" (Mongo + zap), "db", "log", or "off".
	ViewLog       string
	MongoURI      string // only used when ViewLog is "all" or "db"
	MongoDatabase string

	// Base URL of the deployed site, used for absolute links.
	BaseURL string
}

// ViewLogWantsDB reports whether the configured view-log mode needs a
// MongoDB connection.
func (c AppConfig) ViewLogWantsDB() bool {
	return c.ViewLog == "all" || c.ViewLog == "db"
}
