package config

import "runtime"

// Default configuration constants
const (
	defaultKioskURL      = "https://fmfau.org/"
	defaultAllowedSuffix = "fmfau.org"

	defaultSplashMinDisplayMs = 2000
	defaultSplashWidth        = 600
	defaultSplashHeight       = 300
	defaultSplashTitle        = "Welcome to FMFAU Desktop"
	defaultSplashSubtitle     = "Enjoy it all with no redirects!"

	defaultOverlayZoneWidth  = 200 // CSS px
	defaultOverlayZoneHeight = 100 // CSS px
	defaultOverlayHideDelay  = 2000

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Kiosk: KioskConfig{
			URL:           defaultKioskURL,
			AllowedSuffix: defaultAllowedSuffix,
		},
		Splash: SplashConfig{
			Enabled:      true,
			MinDisplayMs: defaultSplashMinDisplayMs,
			Width:        defaultSplashWidth,
			Height:       defaultSplashHeight,
			Title:        defaultSplashTitle,
			Subtitle:     defaultSplashSubtitle,
		},
		Overlay: OverlayConfig{
			Enabled:     true,
			ZoneWidth:   defaultOverlayZoneWidth,
			ZoneHeight:  defaultOverlayZoneHeight,
			HideDelayMs: defaultOverlayHideDelay,
		},
		App: AppConfig{
			// macOS apps conventionally outlive their last window.
			StayResident: runtime.GOOS == "darwin",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
