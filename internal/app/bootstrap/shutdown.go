// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the update poller and flushes the statistics ledger.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if running.poller != nil {
		logger.Info("stopping update polling")
		running.poller.Stop()
		running.poller = nil
	}
	if deps.Stats != nil {
		if err := deps.Stats.Flush(); err != nil {
			logger.Error("final statistics flush failed", zap.Error(err))
			return err
		}
	}
	return nil
}
