package url

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidURL is returned when a navigation target cannot be parsed.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrEmptySuffix is returned when an allow-list is built without a domain.
	ErrEmptySuffix = errors.New("allowed suffix is empty")
)

// ResourceKind classifies an outgoing request of the kiosk window.
type ResourceKind int

const (
	// ResourceMainFrame is a top-level document load.
	ResourceMainFrame ResourceKind = iota
	// ResourceSubFrame is a document load inside an iframe.
	ResourceSubFrame
	// ResourceSubresource is a script, image, stylesheet or fetch.
	ResourceSubresource
	// ResourceNewWindow is an attempt to open a new top-level window.
	ResourceNewWindow
)

// String returns a human-readable representation of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceMainFrame:
		return "main-frame"
	case ResourceSubFrame:
		return "sub-frame"
	case ResourceSubresource:
		return "subresource"
	case ResourceNewWindow:
		return "new-window"
	default:
		return "unknown"
	}
}

// NavigationRequest is a single request evaluated by the allow-list.
type NavigationRequest struct {
	URL  string
	Kind ResourceKind
}

// Verdict reasons.
const (
	ReasonAllowedHost    = "host matches allowed suffix"
	ReasonNotFiltered    = "resource kind not filtered"
	ReasonForeignHost    = "host outside allowed suffix"
	ReasonNoHost         = "URL has no host"
	ReasonUnparseable    = "URL could not be parsed"
	ReasonNewWindowDeny  = "new windows are disabled"
	ReasonUnknownRequest = "unknown resource kind"
)

// Verdict is the outcome of evaluating a NavigationRequest.
type Verdict struct {
	Allow  bool
	Reason string
}

// AllowList permits top-level navigations to a single domain and its
// subdomains. The zero value is not usable; build one with NewAllowList.
type AllowList struct {
	suffix          string
	filterSubFrames bool
}

// Option configures an AllowList.
type Option func(*AllowList)

// WithSubFrames extends hostname filtering to iframe document loads.
func WithSubFrames(enabled bool) Option {
	return func(a *AllowList) {
		a.filterSubFrames = enabled
	}
}

// NewAllowList builds an allow-list for the given domain suffix.
func NewAllowList(suffix string, opts ...Option) (*AllowList, error) {
	suffix = NormalizeSuffix(suffix)
	if suffix == "" {
		return nil, ErrEmptySuffix
	}
	a := &AllowList{suffix: suffix}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Suffix returns the normalized allowed suffix.
func (a *AllowList) Suffix() string {
	return a.suffix
}

// FiltersSubFrames reports whether iframe navigations are filtered.
func (a *AllowList) FiltersSubFrames() bool {
	return a.filterSubFrames
}

// MatchesHost reports whether host equals the suffix or is a subdomain of it.
// The match is on a label boundary: "evilfmfau.org" does not match "fmfau.org".
func (a *AllowList) MatchesHost(host string) bool {
	host = normalizeHost(host)
	if host == "" {
		return false
	}
	if host == a.suffix {
		return true
	}
	return strings.HasSuffix(host, "."+a.suffix)
}

// Evaluate decides whether req may proceed. New-window requests are always
// denied. The returned error is non-nil only for unparseable URLs, in which
// case the verdict denies the request.
func (a *AllowList) Evaluate(req NavigationRequest) (Verdict, error) {
	switch req.Kind {
	case ResourceNewWindow:
		return Verdict{Allow: false, Reason: ReasonNewWindowDeny}, nil
	case ResourceSubresource:
		return Verdict{Allow: true, Reason: ReasonNotFiltered}, nil
	case ResourceSubFrame:
		if !a.filterSubFrames {
			return Verdict{Allow: true, Reason: ReasonNotFiltered}, nil
		}
	case ResourceMainFrame:
	default:
		return Verdict{Allow: false, Reason: ReasonUnknownRequest}, nil
	}

	host, err := Hostname(req.URL)
	if err != nil {
		return Verdict{Allow: false, Reason: ReasonUnparseable}, err
	}
	if host == "" {
		return Verdict{Allow: false, Reason: ReasonNoHost}, nil
	}
	if !a.MatchesHost(host) {
		return Verdict{Allow: false, Reason: ReasonForeignHost}, nil
	}
	return Verdict{Allow: true, Reason: ReasonAllowedHost}, nil
}
