package webkit

import "errors"

var (
	ErrWebViewNotInitialized  = errors.New("webkit: web view not initialized")
	ErrSettingsUnavailable    = errors.New("webkit: failed to get settings")
	ErrUserContentUnavailable = errors.New("webkit: user content manager unavailable")
	ErrHandlerRegistration    = errors.New("webkit: script message handler registration failed")
)
