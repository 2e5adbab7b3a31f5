package usecase

import (
	"context"
	"errors"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

// ErrNoURLs is returned when CheckURLsUseCase is given nothing to check.
var ErrNoURLs = errors.New("no URLs to check")

// CheckURLsUseCase evaluates URLs against the allow-list as top-level loads
// of the kiosk window, without opening one.
type CheckURLsUseCase struct {
	allow *domainurl.AllowList
}

// NewCheckURLsUseCase creates a new CheckURLsUseCase.
func NewCheckURLsUseCase(allow *domainurl.AllowList) *CheckURLsUseCase {
	return &CheckURLsUseCase{allow: allow}
}

// CheckURLsInput contains the URLs to evaluate.
type CheckURLsInput struct {
	URLs []string
	// Kind defaults to a main-frame load.
	Kind domainurl.ResourceKind
}

// URLCheck is the verdict for one URL.
type URLCheck struct {
	URL     string
	Host    string
	Verdict domainurl.Verdict
	Err     error
}

// CheckURLsOutput contains one result per input URL, in input order.
type CheckURLsOutput struct {
	Suffix  string
	Results []URLCheck
	Denied  int
}

// Execute evaluates every URL in the input.
func (uc *CheckURLsUseCase) Execute(_ context.Context, input CheckURLsInput) (*CheckURLsOutput, error) {
	if len(input.URLs) == 0 {
		return nil, ErrNoURLs
	}

	out := &CheckURLsOutput{
		Suffix:  uc.allow.Suffix(),
		Results: make([]URLCheck, 0, len(input.URLs)),
	}
	for _, raw := range input.URLs {
		target := domainurl.Normalize(raw)
		host, _ := domainurl.Hostname(target)
		verdict, err := uc.allow.Evaluate(domainurl.NavigationRequest{URL: target, Kind: input.Kind})
		if !verdict.Allow {
			out.Denied++
		}
		out.Results = append(out.Results, URLCheck{
			URL:     target,
			Host:    host,
			Verdict: verdict,
			Err:     err,
		})
	}
	return out, nil
}
