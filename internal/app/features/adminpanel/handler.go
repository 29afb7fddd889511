// internal/app/features/adminpanel/handler.go
package adminpanel

import (
	"time"

	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
)

// Handler owns the admin-facing flows: the panel, the material
// submission wizard, material deletion, and the statistics screens.
//
// It is constructed once at startup in bootstrap, using the same stores
// as the browsing feature plus a per-admin session table for wizard
// drafts.
type Handler struct {
	Gate     bot.Gateway
	Catalog  *catalog.Store
	Media    *media.Store
	Stats    *stats.Store
	Admins   access.AdminList
	Sessions *Sessions
	Log      *zap.Logger

	// AdminSticker is sent when the panel opens; empty disables it.
	AdminSticker string

	// Now stamps DateAdded on committed materials.
	Now func() time.Time
}

func NewHandler(gate bot.Gateway, cat *catalog.Store, med *media.Store, st *stats.Store, admins access.AdminList, adminSticker string, logger *zap.Logger) *Handler {
	return &Handler{
		Gate:         gate,
		Catalog:      cat,
		Media:        med,
		Stats:        st,
		Admins:       admins,
		Sessions:     NewSessions(),
		Log:          logger,
		AdminSticker: adminSticker,
		Now:          time.Now,
	}
}

func (h *Handler) deny(cbID string) {
	h.Gate.AnswerCallback(cbID, "🚫 Доступ запрещен")
}
