package provider

import (
	"context"
	"errors"
	"time"

	"github.com/claimradar/claimradar/internal/model"
	"golang.org/x/time/rate"
)

// Error kinds captured at the provider boundary. They are recorded into
// ProviderResult.Err and never escape Verify as Go errors.
var (
	// ErrUnavailable marks network failures and non-2xx responses
	ErrUnavailable = errors.New("fact check service unavailable")

	// ErrMalformed marks responses that could not be parsed
	ErrMalformed = errors.New("malformed fact check response")
)

// Provider is a service capable of attempting to verify a single claim.
// Implementations must not fail past their boundary: network and parse
// failures are captured into the result's Err field with Found=false.
type Provider interface {
	// Name returns the provider name used in merged source lists
	Name() string

	// Verify attempts to fact-check the claim text
	Verify(ctx context.Context, claimText string) model.ProviderResult
}

// newCallLimiter builds the per-provider pacing limiter: one call per
// minDelay, no bursting. The delay is a provider-level property.
func newCallLimiter(minDelay time.Duration) *rate.Limiter {
	if minDelay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(minDelay), 1)
}

// errResult builds the structured failure marker for a provider
func errResult(name string, err error) model.ProviderResult {
	return model.ProviderResult{
		Found:  false,
		Source: name,
		Err:    err.Error(),
	}
}
