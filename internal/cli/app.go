// Package cli holds what the command line needs besides cobra itself.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fmfau/fmfau-desktop/internal/cli/styles"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/config"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
}

// NewApp loads the effective configuration without writing anything to disk.
// A missing config file yields the defaults plus environment overrides.
func NewApp() (*App, error) {
	path, err := config.GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("resolve config file: %w", err)
	}

	manager, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := manager.LoadReadOnly(); err != nil {
		return nil, err
	}

	return &App{
		Config:     manager.Get(),
		ConfigFile: path,
		Theme:      styles.NewTheme(),
	}, nil
}

// ConfigExists reports whether the config file is present on disk.
func (a *App) ConfigExists() bool {
	_, err := os.Stat(a.ConfigFile)
	return !errors.Is(err, os.ErrNotExist)
}
