// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	"github.com/dalemusser/waffle/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ConnectDB opens the Telegram session and builds the file-backed stores.
//
// tgbotapi.NewBotAPI calls getMe, so a bad token fails here rather than
// on the first update.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := tgbotapi.NewBotAPI(appCfg.BotToken)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to Telegram: %w", err)
	}
	logger.Info("connected to Telegram", zap.String("bot", api.Self.UserName))

	mediaStore, err := media.New(appCfg.MediaDir, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("init media dir %s: %w", appCfg.MediaDir, err)
	}

	admins := access.ParseAdminIDs(appCfg.AdminIDs)
	if len(admins) == 0 {
		logger.Warn("no valid admin ids configured, admin features are unreachable",
			zap.String("admin_ids", appCfg.AdminIDs))
	}

	return DBDeps{
		Bot:     api,
		Catalog: catalog.New(appCfg.MaterialsFile, mediaStore, logger),
		Media:   mediaStore,
		Stats:   stats.New(appCfg.StatsFile, logger),
		Admins:  admins,
	}, nil
}

// EnsureSchema verifies the data files are usable before the bot starts
// answering. The stores create missing files on first write; this only
// surfaces a corrupt or unreadable catalog early.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	all, err := deps.Catalog.All()
	if err != nil {
		return fmt.Errorf("read materials catalog %s: %w", appCfg.MaterialsFile, err)
	}
	logger.Info("materials catalog loaded",
		zap.String("path", appCfg.MaterialsFile),
		zap.Int("materials", len(all)))
	return nil
}
