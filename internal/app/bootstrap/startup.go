// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/features/adminpanel"
	"github.com/Krill-lover/welccom/internal/app/features/browse"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// running holds pieces created in Startup that Shutdown needs to stop.
// WAFFLE passes DBDeps by value between hooks, so the poller lives here.
var running struct {
	poller *bot.Poller
}

// Startup wires the feature handlers to the Telegram gateway and starts
// the long-poll loop. It runs after ConnectDB and EnsureSchema, before
// the HTTP handler for the status endpoints is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	gate := bot.NewTelegram(deps.Bot, logger)

	browseHandler := browse.NewHandler(gate, deps.Catalog, deps.Media, deps.Stats, deps.Admins, appCfg.WelcomeSticker, logger)
	adminHandler := adminpanel.NewHandler(gate, deps.Catalog, deps.Media, deps.Stats, deps.Admins, appCfg.AdminSticker, logger)

	d := newDispatcher(browseHandler, adminHandler, deps.Admins, gate, logger)

	running.poller = bot.NewPoller(deps.Bot, appCfg.PollTimeout, d.Handle, logger)
	running.poller.Start()
	logger.Info("update polling started", zap.Int("timeout_seconds", appCfg.PollTimeout))
	return nil
}
