// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DBDeps holds back-end dependencies for the app: the Telegram API
// client plus the file-backed stores everything else reads and writes.
type DBDeps struct {
	Bot     *tgbotapi.BotAPI
	Catalog *catalog.Store
	Media   *media.Store
	Stats   *stats.Store
	Admins  access.AdminList
}
