// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP port for the
// status endpoints, logging level and format, timeouts). AppConfig is
// everything specific to the bot itself: the Telegram credentials, where
// the JSON data files and uploaded media live, and the sticker ids used
// on the greeting screens.
type AppConfig struct {
	// Telegram connection configuration
	BotToken    string // Bot API token from @BotFather
	PollTimeout int    // long-poll timeout in seconds for GetUpdates

	// Access control
	AdminIDs string // comma-separated Telegram user ids with admin access

	// Data file configuration
	MaterialsFile string // path of the materials catalog JSON file
	StatsFile     string // path of the usage statistics JSON file
	MediaDir      string // directory for uploaded material files

	// Sticker ids sent with the greeting screens (blank disables them)
	WelcomeSticker string // sent on /start
	AdminSticker   string // sent when the admin panel opens
}
