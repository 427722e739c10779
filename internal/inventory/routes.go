package inventory

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches the dashboard page and the JSON API.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Dashboard)
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Post("/items/commit", h.Commit)
	})
}
