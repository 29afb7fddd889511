// internal/app/features/browse/handler.go
package browse

import (
	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	"go.uber.org/zap"
)

// Handler owns the student-facing flows: the welcome screen, text and
// slash commands, and the subject → group/type → list → detail drill-down.
//
// It is constructed once at startup in bootstrap, sharing the catalog,
// media, and analytics stores with the admin feature.
type Handler struct {
	Gate    bot.Gateway
	Catalog *catalog.Store
	Media   *media.Store
	Stats   *stats.Store
	Admins  access.AdminList
	Log     *zap.Logger

	// WelcomeSticker is sent ahead of the /start greeting; empty disables it.
	WelcomeSticker string
}

func NewHandler(gate bot.Gateway, cat *catalog.Store, med *media.Store, st *stats.Store, admins access.AdminList, welcomeSticker string, logger *zap.Logger) *Handler {
	return &Handler{
		Gate:           gate,
		Catalog:        cat,
		Media:          med,
		Stats:          st,
		Admins:         admins,
		Log:            logger,
		WelcomeSticker: welcomeSticker,
	}
}
