// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the bot.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: bot_token, materials_file, etc.
//   - Environment variables: WELCCOM_BOT_TOKEN, WELCCOM_MATERIALS_FILE, etc.
//   - Command-line flags: --bot_token, --materials_file, etc.
var appConfigKeys = []config.AppKey{
	{Name: "bot_token", Default: "", Desc: "Telegram Bot API token"},
	{Name: "poll_timeout", Default: 60, Desc: "Long-poll timeout in seconds for GetUpdates"},

	{Name: "admin_ids", Default: "1862652984", Desc: "Comma-separated Telegram user ids with admin access"},

	// Data file configuration
	{Name: "materials_file", Default: "data/materials.json", Desc: "Path of the materials catalog JSON file"},
	{Name: "stats_file", Default: "data/statistics.json", Desc: "Path of the usage statistics JSON file"},
	{Name: "media_dir", Default: "static/media", Desc: "Directory for uploaded material files"},

	// Greeting stickers (blank disables them)
	{Name: "welcome_sticker", Default: "CAACAgIAAxkBAAEPpXNo_iF5zvoSR-sX4u0G-TxWjbGrlQACzTIAAtyEWEgs4kVS4Lfk0DYE", Desc: "Sticker file id sent on /start"},
	{Name: "admin_sticker", Default: "CAACAgIAAxkBAAEPpYlo_i6hB3X4xhLe2lulwpAta0LBngACMDcAApVPWEiv_tHLqqsS0zYE", Desc: "Sticker file id sent when the admin panel opens"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before the Telegram connection or handlers
// are built. CoreConfig comes from the shared WAFFLE layer; AppConfig
// is specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WELCCOM", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BotToken:    appValues.String("bot_token"),
		PollTimeout: appValues.Int("poll_timeout"),

		AdminIDs: appValues.String("admin_ids"),

		MaterialsFile: appValues.String("materials_file"),
		StatsFile:     appValues.String("stats_file"),
		MediaDir:      appValues.String("media_dir"),

		WelcomeSticker: appValues.String("welcome_sticker"),
		AdminSticker:   appValues.String("admin_sticker"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.BotToken == "" {
		return fmt.Errorf("bot_token is required (set WELCCOM_BOT_TOKEN or --bot_token)")
	}
	if appCfg.PollTimeout <= 0 {
		return fmt.Errorf("poll_timeout must be positive, got %d", appCfg.PollTimeout)
	}
	if appCfg.MaterialsFile == "" || appCfg.StatsFile == "" {
		return fmt.Errorf("materials_file and stats_file must both be set")
	}
	return nil
}
