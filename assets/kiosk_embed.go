// Package assets bundles the markup, styles and scripts the shell injects.
package assets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
)

// Version tags the bundled overlay and bridge. Bump it when any script changes.
const Version = "1.0.0"

//go:embed splash/splash.html
var splashHTML string

// OverlayStyles is installed as a user style sheet in the kiosk window.
//
//go:embed overlay/overlay.css
var OverlayStyles string

// BridgeScript exposes window.kioskBridge to the isolated world.
//
//go:embed overlay/bridge.js
var BridgeScript string

// OverlayScript builds the minimize/close cluster.
//
//go:embed overlay/overlay.js
var OverlayScript string

var splashTemplate = template.Must(template.New("splash").Parse(splashHTML))

// SplashData fills the splash template.
type SplashData struct {
	Title    string
	Subtitle string
}

// RenderSplash returns the splash page with data escaped into it.
func RenderSplash(data SplashData) (string, error) {
	var buf bytes.Buffer
	if err := splashTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render splash: %w", err)
	}
	return buf.String(), nil
}

// OverlayParams are read by OverlayScript from window.__kioskOverlayConfig.
type OverlayParams struct {
	ZoneWidth   int `json:"zoneWidth"`
	ZoneHeight  int `json:"zoneHeight"`
	HideDelayMs int `json:"hideDelayMs"`
}

// OverlayConfigScript returns the script that publishes p before the overlay runs.
func OverlayConfigScript(p OverlayParams) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode overlay config: %w", err)
	}
	return fmt.Sprintf("window.__kioskOverlayConfig = Object.freeze(%s);", data), nil
}

// Scripts lists every bundled script by name, in injection order.
func Scripts() []NamedScript {
	return []NamedScript{
		{Name: "bridge.js", Source: BridgeScript},
		{Name: "overlay.js", Source: OverlayScript},
	}
}

// NamedScript pairs a bundled script with its file name for diagnostics.
type NamedScript struct {
	Name   string
	Source string
}
