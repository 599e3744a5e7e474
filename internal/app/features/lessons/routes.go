// internal/app/features/lessons/routes.go
package lessons

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLesson)
	r.Get("/stats", h.ServeStats)
	return r
}
