package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claimradar/claimradar/internal/aggregate"
	"github.com/claimradar/claimradar/internal/cache"
	"github.com/claimradar/claimradar/internal/extract"
	"github.com/claimradar/claimradar/internal/geo"
	"github.com/claimradar/claimradar/internal/metrics"
	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/provider"
	"github.com/claimradar/claimradar/internal/score"
	"github.com/claimradar/claimradar/internal/social"
	"github.com/google/uuid"
)

// Pipeline orchestrates the complete analysis flow: extraction, verification,
// scoring and geographic tracking. One pipeline is safe for concurrent use.
type Pipeline struct {
	extractor  *extract.ClaimExtractor
	aggregator *aggregate.Aggregator
	scorer     *score.Scorer
	tracker    *geo.Tracker
	monitor    *social.Monitor
	config     *model.Config
	log        *slog.Logger
}

// New creates a pipeline from configuration. Provider setup failures are
// fatal; a pipeline without at least the offline provider cannot verify
// anything.
func New(cfg *model.Config) (*Pipeline, error) {
	providers, err := provider.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure providers: %w", err)
	}

	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		resultCache = cache.NewResultCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Pipeline{
		extractor:  extract.NewClaimExtractor(),
		aggregator: aggregate.New(providers, resultCache, cfg.HTTP.Timeout),
		scorer:     score.NewScorer(),
		tracker:    geo.NewTracker(),
		monitor:    social.NewMonitor(cfg.Social.ViralityThreshold, cfg.Social.HistoryWindow),
		config:     cfg,
		log:        slog.Default().With("component", "pipeline"),
	}, nil
}

// ExtractClaims pulls factual assertions out of raw content. HTML input is
// reduced to its visible text first.
func (p *Pipeline) ExtractClaims(content string) []model.Claim {
	if extract.LooksLikeHTML(content) {
		content = extract.VisibleText(content)
	}
	claims := p.extractor.Extract(content)
	metrics.ClaimsExtracted.Add(float64(len(claims)))
	return claims
}

// VerifyClaim runs one claim through the provider aggregator
func (p *Pipeline) VerifyClaim(ctx context.Context, claimText string) model.FactCheckResult {
	return p.aggregator.Verify(ctx, claimText)
}

// ScoreClaim derives the credibility assessment for a verified claim
func (p *Pipeline) ScoreClaim(claim model.Claim, factCheck model.FactCheckResult) model.CredibilityScore {
	return p.scorer.Score(claim, factCheck)
}

// Analyze runs the full flow over one piece of content. Claims are verified
// sequentially; the aggregator already fans out across providers per claim.
// When the location names a country, every scored claim is folded into the
// geographic tracker.
func (p *Pipeline) Analyze(ctx context.Context, content string, location model.Location) (*model.AnalysisResult, error) {
	claims := p.ExtractClaims(content)

	result := &model.AnalysisResult{
		ID:         uuid.NewString(),
		Location:   location,
		AnalyzedAt: time.Now().UTC(),
		Claims:     make([]model.ClaimAnalysis, 0, len(claims)),
	}

	for _, claim := range claims {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		factCheck := p.aggregator.Verify(ctx, claim.Text)
		credScore := p.scorer.Score(claim, factCheck)

		result.Claims = append(result.Claims, model.ClaimAnalysis{
			Claim:     claim,
			FactCheck: factCheck,
			Score:     credScore,
		})

		if location.Country != "" {
			p.tracker.Track(geo.TrackedClaim{
				Claim:   claim,
				Score:   credScore,
				Sources: factCheck.Sources,
			}, location)
		}
	}

	p.log.Info("analyzed content",
		"claims", len(result.Claims),
		"high_risk", result.HighRiskCount(),
		"country", location.Country)

	return result, nil
}

// Tracker exposes the geographic aggregation views
func (p *Pipeline) Tracker() *geo.Tracker {
	return p.tracker
}

// SocialMonitor exposes the social media trend monitor
func (p *Pipeline) SocialMonitor() *social.Monitor {
	return p.monitor
}
