package config

import (
	"fmt"
	"net/url"
	"strings"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

const maxWindowDimension = 10000

// validateConfig collects every problem before failing so one edit fixes all.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateKiosk(config)...)
	validationErrors = append(validationErrors, validateSplash(config)...)
	validationErrors = append(validationErrors, validateOverlay(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateKiosk(config *Config) []string {
	var validationErrors []string

	allow, err := domainurl.NewAllowList(config.Kiosk.AllowedSuffix)
	if err != nil {
		validationErrors = append(validationErrors, "kiosk.allowed_suffix must not be empty")
	}

	u, err := url.Parse(config.Kiosk.URL)
	switch {
	case config.Kiosk.URL == "":
		validationErrors = append(validationErrors, "kiosk.url must not be empty")
	case err != nil:
		validationErrors = append(validationErrors, fmt.Sprintf("kiosk.url is not a valid URL: %v", err))
	case u.Scheme != "http" && u.Scheme != "https":
		validationErrors = append(validationErrors, fmt.Sprintf("kiosk.url must use http or https (got: %s)", u.Scheme))
	case u.Hostname() == "":
		validationErrors = append(validationErrors, "kiosk.url must include a host")
	case allow != nil && !allow.MatchesHost(u.Hostname()):
		validationErrors = append(validationErrors, fmt.Sprintf(
			"kiosk.url host %q is outside kiosk.allowed_suffix %q",
			u.Hostname(),
			config.Kiosk.AllowedSuffix,
		))
	}
	return validationErrors
}

func validateSplash(config *Config) []string {
	var validationErrors []string
	if config.Splash.MinDisplayMs < 1 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"splash.min_display_ms must be at least 1 (got: %d)",
			config.Splash.MinDisplayMs,
		))
	}
	if config.Splash.Width < 1 || config.Splash.Width > maxWindowDimension {
		validationErrors = append(validationErrors, fmt.Sprintf("splash.width must be between 1 and %d", maxWindowDimension))
	}
	if config.Splash.Height < 1 || config.Splash.Height > maxWindowDimension {
		validationErrors = append(validationErrors, fmt.Sprintf("splash.height must be between 1 and %d", maxWindowDimension))
	}
	return validationErrors
}

func validateOverlay(config *Config) []string {
	var validationErrors []string
	if config.Overlay.ZoneWidth < 1 {
		validationErrors = append(validationErrors, "overlay.zone_width must be positive")
	}
	if config.Overlay.ZoneHeight < 1 {
		validationErrors = append(validationErrors, "overlay.zone_height must be positive")
	}
	if config.Overlay.HideDelayMs < 0 {
		validationErrors = append(validationErrors, "overlay.hide_delay_ms must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
