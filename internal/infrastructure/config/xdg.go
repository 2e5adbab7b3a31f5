package config

import (
	"os"
	"path/filepath"

	"github.com/fmfau/fmfau-desktop/internal/domain/build"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for fmfau-desktop.
// - $XDG_CONFIG_HOME/fmfau-desktop (default: ~/.config/fmfau-desktop)
// - $XDG_DATA_HOME/fmfau-desktop (default: ~/.local/share/fmfau-desktop)
// - $XDG_STATE_HOME/fmfau-desktop (default: ~/.local/state/fmfau-desktop)
// - $XDG_CACHE_HOME/fmfau-desktop (default: ~/.cache/fmfau-desktop)
//
// With ENV=dev everything lives under ./.dev/fmfau-desktop.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", build.AppName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   filepath.Join(devDir, "data"),
			StateHome:  filepath.Join(devDir, "state"),
			CacheHome:  filepath.Join(devDir, "cache"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
		CacheHome:  xdgDir("XDG_CACHE_HOME", homeDir, ".cache"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, build.AppName)
}

// GetConfigDir returns the XDG config directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetLogDir returns the log directory. Logs are state, not data.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetWebDataDirs returns the directories backing the persistent web session.
func GetWebDataDirs() (dataDir, cacheDir string, err error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(dirs.DataHome, "webkit"), filepath.Join(dirs.CacheHome, "webkit"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome, dirs.CacheHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
