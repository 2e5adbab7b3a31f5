// Package url provides URL and hostname utilities for the kiosk shell.
package url

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize adds https:// prefix if missing for host-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(input, "http://"):
		return input
	case strings.HasPrefix(input, "https://"):
		return input
	case strings.HasPrefix(input, "file://"):
		return input
	case strings.HasPrefix(input, "about:"):
		return input
	case strings.HasPrefix(input, "data:"):
		return input
	}

	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// Hostname parses rawURL and returns its lower-cased hostname without port
// or trailing dot. URLs without a host (about:blank, data:) return "".
func Hostname(rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return normalizeHost(parsed.Hostname()), nil
}

// NormalizeSuffix lower-cases a domain suffix and strips surrounding dots
// and whitespace, so ".fmfau.org." and "FMFAU.org" compare equal.
func NormalizeSuffix(suffix string) string {
	suffix = strings.TrimSpace(suffix)
	suffix = strings.Trim(suffix, ".")
	return strings.ToLower(suffix)
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSuffix(host, "."))
}
