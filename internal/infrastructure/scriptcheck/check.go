// Package scriptcheck compiles bundled page scripts ahead of injection so a
// syntax error fails at startup instead of silently on every page load.
package scriptcheck

import (
	"errors"
	"fmt"

	"github.com/fmfau/fmfau-desktop/assets"
	"github.com/grafana/sobek"
)

// ErrInvalidScript wraps every compile failure.
var ErrInvalidScript = errors.New("invalid bundled script")

// Validate compiles each script and reports all failures together.
func Validate(scripts []assets.NamedScript) error {
	var errs []error
	for _, s := range scripts {
		if _, err := sobek.Compile(s.Name, s.Source, false); err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", ErrInvalidScript, s.Name, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateBundled checks the scripts shipped in the binary.
func ValidateBundled() error {
	return Validate(assets.Scripts())
}
