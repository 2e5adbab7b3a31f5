package config

import "time"

// Config represents the complete configuration for fmfau-desktop.
type Config struct {
	Kiosk   KioskConfig   `mapstructure:"kiosk" toml:"kiosk" json:"kiosk"`
	Filter  FilterConfig  `mapstructure:"filter" toml:"filter" json:"filter"`
	Splash  SplashConfig  `mapstructure:"splash" toml:"splash" json:"splash"`
	Overlay OverlayConfig `mapstructure:"overlay" toml:"overlay" json:"overlay"`
	App     AppConfig     `mapstructure:"app" toml:"app" json:"app"`
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	Debug   DebugConfig   `mapstructure:"debug" toml:"debug" json:"debug"`
}

// KioskConfig controls the locked browser window.
type KioskConfig struct {
	// URL is the start page loaded into the kiosk window.
	URL string `mapstructure:"url" toml:"url" json:"url" jsonschema:"format=uri"`
	// AllowedSuffix is the hostname suffix top-level navigations must match.
	// Matching is on a label boundary: "fmfau.org" admits "a.fmfau.org"
	// but not "evilfmfau.org".
	AllowedSuffix string `mapstructure:"allowed_suffix" toml:"allowed_suffix" json:"allowed_suffix" jsonschema:"minLength=1"`
	// Preload creates the kiosk hidden at startup so the page loads behind the splash.
	Preload bool `mapstructure:"preload" toml:"preload" json:"preload"`
}

// FilterConfig tunes the navigation filter.
type FilterConfig struct {
	// SubFrames extends the host check to sub-frame navigations.
	SubFrames bool `mapstructure:"subframes" toml:"subframes" json:"subframes"`
}

// SplashConfig controls the startup splash window.
type SplashConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// MinDisplayMs is how long the splash stays up before the kiosk is revealed.
	MinDisplayMs int    `mapstructure:"min_display_ms" toml:"min_display_ms" json:"min_display_ms" jsonschema:"minimum=1"`
	Width        int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height       int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	Title        string `mapstructure:"title" toml:"title" json:"title"`
	Subtitle     string `mapstructure:"subtitle" toml:"subtitle" json:"subtitle"`
}

// MinDisplay returns MinDisplayMs as a duration.
func (s SplashConfig) MinDisplay() time.Duration {
	return time.Duration(s.MinDisplayMs) * time.Millisecond
}

// OverlayConfig controls the injected minimize/close cluster.
type OverlayConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// ZoneWidth and ZoneHeight size the top-right activation zone in CSS pixels.
	ZoneWidth  int `mapstructure:"zone_width" toml:"zone_width" json:"zone_width" jsonschema:"minimum=1"`
	ZoneHeight int `mapstructure:"zone_height" toml:"zone_height" json:"zone_height" jsonschema:"minimum=1"`
	// HideDelayMs is the idle time after which the cluster fades out.
	HideDelayMs int `mapstructure:"hide_delay_ms" toml:"hide_delay_ms" json:"hide_delay_ms" jsonschema:"minimum=0"`
}

// AppConfig holds process lifetime options.
type AppConfig struct {
	// StayResident keeps the process alive after the last window closes.
	StayResident bool `mapstructure:"stay_resident" toml:"stay_resident" json:"stay_resident"`
}

// SessionConfig controls web data persistence.
type SessionConfig struct {
	// Ephemeral keeps cookies and storage in memory only.
	Ephemeral bool `mapstructure:"ephemeral" toml:"ephemeral" json:"ephemeral"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// DebugConfig holds developer options. Not meant for deployed kiosks.
type DebugConfig struct {
	EnableDevTools bool `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}
