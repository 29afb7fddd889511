// internal/app/features/status/routes.go
package status

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the operational endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.ServeHealth)
	r.Get("/stats", h.ServeStats)
	return r
}
