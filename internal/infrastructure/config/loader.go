// Package config loads, validates and watches the fmfau-desktop configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// FMFAU_KIOSK_URL, FMFAU_SPLASH_ENABLED, ...
	v.SetEnvPrefix("FMFAU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with logging.NewFromEnv, which runs before the file is read.
	if err := v.BindEnv("logging.level", "FMFAU_LOG_LEVEL", "FMFAU_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FMFAU_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FMFAU_LOG_FORMAT", "FMFAU_LOGGING_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FMFAU_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// LoadReadOnly loads the configuration like Load but never touches disk.
// A missing file yields the defaults plus environment overrides.
func (m *Manager) LoadReadOnly() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Kiosk.URL = strings.TrimSpace(config.Kiosk.URL)
	config.Kiosk.AllowedSuffix = domainurl.NormalizeSuffix(config.Kiosk.AllowedSuffix)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	case "", "text", "console":
		config.Logging.Format = "console"
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaFileName)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
// Every key must be registered here for env overrides to reach Unmarshal.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("kiosk.url", defaults.Kiosk.URL)
	m.viper.SetDefault("kiosk.allowed_suffix", defaults.Kiosk.AllowedSuffix)
	m.viper.SetDefault("kiosk.preload", defaults.Kiosk.Preload)

	m.viper.SetDefault("filter.subframes", defaults.Filter.SubFrames)

	m.viper.SetDefault("splash.enabled", defaults.Splash.Enabled)
	m.viper.SetDefault("splash.min_display_ms", defaults.Splash.MinDisplayMs)
	m.viper.SetDefault("splash.width", defaults.Splash.Width)
	m.viper.SetDefault("splash.height", defaults.Splash.Height)
	m.viper.SetDefault("splash.title", defaults.Splash.Title)
	m.viper.SetDefault("splash.subtitle", defaults.Splash.Subtitle)

	m.viper.SetDefault("overlay.enabled", defaults.Overlay.Enabled)
	m.viper.SetDefault("overlay.zone_width", defaults.Overlay.ZoneWidth)
	m.viper.SetDefault("overlay.zone_height", defaults.Overlay.ZoneHeight)
	m.viper.SetDefault("overlay.hide_delay_ms", defaults.Overlay.HideDelayMs)

	m.viper.SetDefault("app.stay_resident", defaults.App.StayResident)
	m.viper.SetDefault("session.ephemeral", defaults.Session.Ephemeral)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("debug.enable_devtools", defaults.Debug.EnableDevTools)
}
