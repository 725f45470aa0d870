package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claimradar/claimradar/internal/model"
	"golang.org/x/time/rate"
)

// ratingScores maps textual ratings to confidence, substring match,
// first match wins in this order.
var ratingScores = []struct {
	label string
	score float64
}{
	{"TRUE", 1.0},
	{"MOSTLY TRUE", 0.8},
	{"MIXED", 0.5},
	{"MOSTLY FALSE", 0.2},
	{"FALSE", 0.0},
}

const defaultRatingScore = 0.5

// GoogleProvider queries the Google Fact Check Tools claim search API
type GoogleProvider struct {
	name       string
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// GoogleOptions configures the Google provider
type GoogleOptions struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	MinDelay   time.Duration // Minimum delay between calls for this instance
	HTTPProxy  string
	HTTPSProxy string
}

// NewGoogleProvider creates the reference network provider
func NewGoogleProvider(opts GoogleOptions) (*GoogleProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("google fact check: API key is required")
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &GoogleProvider{
		name:      "Google Fact Check",
		baseURL:   baseURL,
		apiKey:    opts.APIKey,
		userAgent: opts.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(opts.HTTPProxy, opts.HTTPSProxy),
			},
		},
		limiter: newCallLimiter(opts.MinDelay),
		log:     slog.Default().With("provider", "google_fact_check"),
	}, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return p.name
}

// googleResponse mirrors the claim search payload
type googleResponse struct {
	Claims []struct {
		Text         string `json:"text"`
		Claimant     string `json:"claimant"`
		ReviewRating struct {
			TextualRating string `json:"textualRating"`
		} `json:"reviewRating"`
		ClaimReview []struct {
			URL       string `json:"url"`
			Publisher struct {
				Name string `json:"name"`
			} `json:"publisher"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Verify fact-checks the claim against the claim search API. Failures are
// captured into the result; they never propagate as errors.
func (p *GoogleProvider) Verify(ctx context.Context, claimText string) model.ProviderResult {
	// Respect the per-provider pacing before issuing the request
	if err := p.limiter.Wait(ctx); err != nil {
		return errResult(p.name, fmt.Errorf("%w: %v", ErrUnavailable, err))
	}

	// Periods in the query degrade claim matching
	query := strings.ReplaceAll(strings.TrimSpace(claimText), ".", "")

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", p.apiKey)
	params.Set("languageCode", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return errResult(p.name, fmt.Errorf("%w: create request: %v", ErrUnavailable, err))
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Warn("request failed", "error", err)
		return errResult(p.name, fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer func() { _ = resp.Body.Close() }()

	// A 400 means the query itself was unusable: no results, not an error
	if resp.StatusCode == http.StatusBadRequest {
		return model.ProviderResult{Found: false, Source: p.name}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errResult(p.name, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult(p.name, fmt.Errorf("%w: read body: %v", ErrUnavailable, err))
	}

	var payload googleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return errResult(p.name, fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	if len(payload.Claims) == 0 {
		return model.ProviderResult{Found: false, Source: p.name}
	}

	facts := make([]model.Fact, 0, len(payload.Claims))
	total := 0.0
	for _, c := range payload.Claims {
		fact := model.Fact{
			Text:   c.Text,
			Rating: c.ReviewRating.TextualRating,
		}
		if len(c.ClaimReview) > 0 {
			fact.URL = c.ClaimReview[0].URL
			fact.Publisher = c.ClaimReview[0].Publisher.Name
		}
		facts = append(facts, fact)
		total += RatingScore(fact.Rating)
	}

	p.log.Debug("claim search matched", "facts", len(facts))

	return model.ProviderResult{
		Found:      true,
		Facts:      facts,
		Source:     p.name,
		Confidence: total / float64(len(facts)),
	}
}

// RatingScore converts a free-form textual rating to a confidence score
func RatingScore(textualRating string) float64 {
	upper := strings.ToUpper(textualRating)
	for _, rs := range ratingScores {
		if strings.Contains(upper, rs.label) {
			return rs.score
		}
	}
	return defaultRatingScore
}

// newProxyFunc builds the transport proxy resolver. With no explicit proxy
// configuration it falls back to the environment.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
