// Package webkit adapts WebKitGTK 6 to the kiosk shell: network session,
// web views, navigation policy and injected page content.
package webkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

const dirPerm = 0o755

// ErrSessionInit is returned when WebKit refuses to build a network session.
var ErrSessionInit = errors.New("webkit: network session init failed")

// SessionOptions selects persistent or in-memory web data.
type SessionOptions struct {
	Ephemeral bool
	DataDir   string
	CacheDir  string
}

// Session holds the network session shared by every web view.
// The first session created becomes WebKit's default and views pick it up
// from there, so NewSession runs before any view exists. It must stay
// referenced for the life of the process.
type Session struct {
	session   *webkit.NetworkSession
	ephemeral bool
}

// NewSession creates the network session. With persistent storage, cookies
// live in SQLite under DataDir and third-party cookies are refused.
func NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-session").Logger()

	if opts.Ephemeral {
		s := webkit.NewNetworkSessionEphemeral()
		if s == nil {
			return nil, ErrSessionInit
		}
		if err := checkDefault(true); err != nil {
			return nil, err
		}
		log.Info().Msg("using ephemeral network session")
		return &Session{session: s, ephemeral: true}, nil
	}

	for _, dir := range []string{opts.DataDir, opts.CacheDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	s := webkit.NewNetworkSession(opts.DataDir, opts.CacheDir)
	if s == nil {
		return nil, ErrSessionInit
	}
	if s.IsEphemeral() {
		return nil, fmt.Errorf("%w: session is ephemeral despite data directories", ErrSessionInit)
	}

	cookiePath := filepath.Join(opts.DataDir, "cookies.db")
	if cookies := s.CookieManager(); cookies != nil {
		cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
		cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	}
	s.SetPersistentCredentialStorageEnabled(true)

	if err := checkDefault(false); err != nil {
		return nil, err
	}

	log.Info().
		Str("data_dir", opts.DataDir).
		Str("cache_dir", opts.CacheDir).
		Str("cookies", cookiePath).
		Msg("persistent network session created")

	return &Session{session: s}, nil
}

// Ephemeral reports whether web data is kept in memory only.
func (s *Session) Ephemeral() bool {
	return s != nil && s.ephemeral
}

// checkDefault confirms WebKit adopted the new session as its default.
func checkDefault(wantEphemeral bool) error {
	def := webkit.NetworkSessionGetDefault()
	if def == nil {
		return fmt.Errorf("%w: no default network session", ErrSessionInit)
	}
	return checkSessionMode(wantEphemeral, def.IsEphemeral())
}

// checkSessionMode fails when a session's storage mode is not the one the
// shell configured, e.g. a view created before NewSession ran.
func checkSessionMode(wantEphemeral, gotEphemeral bool) error {
	if wantEphemeral == gotEphemeral {
		return nil
	}
	want, got := "persistent", "ephemeral"
	if wantEphemeral {
		want, got = got, want
	}
	return fmt.Errorf("%w: wanted %s session, WebKit uses %s", ErrSessionInit, want, got)
}
