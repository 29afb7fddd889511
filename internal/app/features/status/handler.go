// internal/app/features/status/handler.go
package status

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
)

// Handler serves the operational HTTP endpoints that run alongside the
// bot's long-poll loop.
type Handler struct {
	Catalog   *catalog.Store
	Stats     *stats.Store
	StartedAt time.Time
	Log       *zap.Logger
}

func NewHandler(cat *catalog.Store, st *stats.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:   cat,
		Stats:     st,
		StartedAt: time.Now(),
		Log:       logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status        string `json:"status"`
	Catalog       string `json:"catalog"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// statsResponse is the JSON structure for the usage summary.
type statsResponse struct {
	TotalUsers       int               `json:"total_users"`
	ActiveUsersToday int               `json:"active_users_today"`
	TotalMaterials   int               `json:"total_materials"`
	SubjectViews     []stats.ViewCount `json:"subject_views"`
	PopularMaterials []stats.ViewCount `json:"popular_materials"`
}

// ServeHealth handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":"readable", "uptime_seconds":123 }
//
// On catalog failure: 503 with status "error".
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:        "ok",
		Catalog:       "readable",
		UptimeSeconds: int64(time.Since(h.StartedAt).Seconds()),
	}

	if _, err := h.Catalog.All(); err != nil {
		h.Log.Error("health-check: catalog read failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Catalog = "unreadable"
		resp.Message = "Catalog unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// ServeStats handles GET /stats with a read-only usage summary.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	all, err := h.Catalog.All()
	if err != nil {
		h.Log.Error("stats endpoint: catalog read failed", zap.Error(err))
		http.Error(w, `{"error":"catalog unavailable"}`, http.StatusServiceUnavailable)
		return
	}

	resp := statsResponse{
		TotalUsers:       h.Stats.TotalUsers(),
		ActiveUsersToday: h.Stats.ActiveUsersToday(),
		TotalMaterials:   len(all),
		SubjectViews:     h.Stats.PopularSubjects(),
		PopularMaterials: h.Stats.PopularMaterials(10),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
