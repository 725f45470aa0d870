package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Cache     CacheConfig     `yaml:"cache"`
	Providers ProvidersConfig `yaml:"providers"`
	Server    ServerConfig    `yaml:"server"`
	Social    SocialConfig    `yaml:"social"`
	Output    OutputConfig    `yaml:"output"`
}

// HTTPConfig configures outbound HTTP behavior for provider clients
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`     // Per provider call timeout
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
	NoProxy    string        `yaml:"no_proxy"`
}

// CacheConfig configures the fact-check result cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ProvidersConfig configures the fact-check provider set
type ProvidersConfig struct {
	Google        GoogleConfig  `yaml:"google"`
	LocalFallback bool          `yaml:"local_fallback"` // Always keep at least the offline provider
	RateDelay     time.Duration `yaml:"rate_delay"`     // Minimum delay between calls, per provider
}

// GoogleConfig configures the Google Fact Check Tools client
type GoogleConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// ServerConfig configures the HTTP API glue layer
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SocialConfig configures the social media trend monitor
type SocialConfig struct {
	ViralityThreshold int           `yaml:"virality_threshold"`
	HistoryWindow     time.Duration `yaml:"history_window"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "claimradar/0.1 (+https://github.com/claimradar/claimradar)",
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Providers: ProvidersConfig{
			Google:        GoogleConfig{Enabled: false, BaseURL: "https://factchecktools.googleapis.com/v1alpha1/claims:search"},
			LocalFallback: true,
			RateDelay:     time.Second,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Social: SocialConfig{
			ViralityThreshold: 1000,
			HistoryWindow:     24 * time.Hour,
		},
	}
}
