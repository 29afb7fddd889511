// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	statusfeature "github.com/Krill-lover/welccom/internal/app/features/status"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// The bot itself talks to Telegram over long polling, so the HTTP
// surface is operational only: a health probe and a read-only usage
// summary for monitoring.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	statusHandler := statusfeature.NewHandler(deps.Catalog, deps.Stats, logger)

	r := chi.NewRouter()
	r.Mount("/", statusfeature.Routes(statusHandler))
	return r, nil
}
