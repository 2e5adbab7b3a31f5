package usecase

import (
	"context"
	"sync/atomic"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// GuardNavigationUseCase applies the allow-list to kiosk requests. The list
// can be swapped at runtime when the allowed suffix changes in config.
type GuardNavigationUseCase struct {
	allow atomic.Pointer[domainurl.AllowList]
}

// NewGuardNavigationUseCase creates a guard for the given allow-list.
func NewGuardNavigationUseCase(allow *domainurl.AllowList) *GuardNavigationUseCase {
	uc := &GuardNavigationUseCase{}
	uc.allow.Store(allow)
	return uc
}

// AllowList returns the allow-list currently in effect.
func (uc *GuardNavigationUseCase) AllowList() *domainurl.AllowList {
	return uc.allow.Load()
}

// Replace swaps the allow-list. A nil list is ignored.
func (uc *GuardNavigationUseCase) Replace(ctx context.Context, allow *domainurl.AllowList) {
	if allow == nil {
		return
	}
	prev := uc.allow.Swap(allow)
	if prev == nil || prev.Suffix() != allow.Suffix() || prev.FiltersSubFrames() != allow.FiltersSubFrames() {
		logging.FromContext(ctx).Info().
			Str("suffix", allow.Suffix()).
			Bool("subframes", allow.FiltersSubFrames()).
			Msg("navigation allow-list updated")
	}
}

// Allow reports whether req may proceed. Evaluation errors deny the request.
func (uc *GuardNavigationUseCase) Allow(ctx context.Context, req domainurl.NavigationRequest) bool {
	log := logging.FromContext(ctx)

	allow := uc.allow.Load()
	if allow == nil {
		log.Error().Str("url", req.URL).Msg("no allow-list configured, cancelling request")
		return false
	}

	verdict, err := allow.Evaluate(req)
	if err != nil {
		log.Warn().Err(err).Str("url", req.URL).Str("kind", req.Kind.String()).Msg("navigation filter error, cancelling request")
		return false
	}
	if !verdict.Allow {
		log.Info().
			Str("url", req.URL).
			Str("kind", req.Kind.String()).
			Str("reason", verdict.Reason).
			Msg("navigation cancelled")
		return false
	}

	log.Trace().Str("url", req.URL).Str("kind", req.Kind.String()).Msg("navigation allowed")
	return true
}
