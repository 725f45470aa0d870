package provider

import (
	"fmt"
	"log/slog"

	"github.com/claimradar/claimradar/internal/model"
)

// FromConfig builds the configured provider set in fixed order: network
// providers first, the offline fallback last. The returned slice is never
// empty when the local fallback is enabled.
func FromConfig(cfg *model.Config) ([]Provider, error) {
	var providers []Provider

	if cfg.Providers.Google.Enabled {
		google, err := NewGoogleProvider(GoogleOptions{
			APIKey:     cfg.Providers.Google.APIKey,
			BaseURL:    cfg.Providers.Google.BaseURL,
			Timeout:    cfg.HTTP.Timeout,
			UserAgent:  cfg.HTTP.UserAgent,
			MinDelay:   cfg.Providers.RateDelay,
			HTTPProxy:  cfg.HTTP.HTTPProxy,
			HTTPSProxy: cfg.HTTP.HTTPSProxy,
		})
		if err != nil {
			return nil, fmt.Errorf("configure google provider: %w", err)
		}
		providers = append(providers, google)
	}

	if cfg.Providers.LocalFallback {
		providers = append(providers, NewLocalProvider())
	}

	if len(providers) == 0 {
		slog.Warn("no fact check providers configured")
	}

	return providers, nil
}
