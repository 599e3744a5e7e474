// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and renders the user-facing error
// page in one step, so handlers can bail out with a single call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the underlying error with request context and
// renders an error page showing userMsg. The logged message and the
// user-visible message are separate on purpose: internals stay in the
// logs.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		Title:   "Something went wrong",
		Message: userMsg,
		BackURL: backURL,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}
