// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Upstream API - credentials, endpoint and request shaping for the broadcaster API.
const (
	APIAppID       = "api.app_id"
	APIAppKey      = "api.app_key"
	APISecret      = "api.secret"
	APIBaseURL     = "api.base_url"
	APITimeout     = "api.timeout"
	APIRateLimit   = "api.rate_limit"
	APIWindowStart = "api.window_start"
	APIWindowEnd   = "api.window_end"
	APIServiceType = "api.service_type"
	APILocales     = "api.locales"
)

// Personal guide.
const (
	PersonalQuery = "personal.query"
)

// Push notifications.
const (
	PushVapidPublicKey = "push.vapid_public_key"
)

// Network transport.
const (
	NetworkFingerprint = "network.fingerprint"
)

// Media Playback - these keys configure the external player used by the play view.
const (
	Player             = "player.default"
	PlayerMaxBandwidth = "player.max_bandwidth"
)

// Terminal User Interface (TUI).
const (
	TUIItemSpacing       = "tui.item_spacing"
	TUIShowDescriptions  = "tui.show_descriptions"
	TUIRoutePromptString = "tui.route_prompt"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
