// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// AppName is the binary and XDG directory name.
const AppName = "fmfau-desktop"

// ApplicationID is the GTK application identifier.
const ApplicationID = "org.fmfau.Desktop"

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/fmfau/fmfau-desktop"
}
