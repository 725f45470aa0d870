package social

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Post is one social media item fed into the monitor. Posts are supplied by
// the caller (or the built-in sample feed); the monitor does no network I/O.
type Post struct {
	Platform     string     `json:"platform"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	Timestamp    time.Time  `json:"timestamp"`
	Engagement   Engagement `json:"engagement"`
	MatchedTerms []string   `json:"matched_terms,omitempty"`
	Sentiment    string     `json:"sentiment,omitempty"`
	Reach        int        `json:"reach"`
}

// Engagement holds per-post interaction counts
type Engagement struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// Total weighs shares and comments above likes
func (e Engagement) Total() int {
	return e.Likes + e.Shares*2 + e.Comments*3
}

// Trends summarizes a batch of monitored posts
type Trends struct {
	TotalPosts       int            `json:"total_posts"`
	Platforms        map[string]int `json:"platforms"`
	TopTerms         map[string]int `json:"top_terms"`
	EngagementLevels map[string]int `json:"engagement_levels"`
	Virality         []ViralPost    `json:"virality"`
	Sentiment        map[string]int `json:"sentiment_distribution"`
	TotalReach       int            `json:"total_reach"`
}

// ViralPost marks content whose engagement crossed the virality threshold
type ViralPost struct {
	Content    string `json:"content"`
	Engagement int    `json:"engagement"`
	Platform   string `json:"platform"`
}

// trendSnapshot is one history record of analyzed trends
type trendSnapshot struct {
	Timestamp time.Time
	Trends    Trends
}

// Monitor tracks keywords and hashtags across social content and keeps a
// bounded trend history
type Monitor struct {
	mu                sync.Mutex
	keywords          map[string]bool
	hashtags          map[string]bool
	history           []trendSnapshot
	viralityThreshold int
	historyWindow     time.Duration
	now               func() time.Time
}

// NewMonitor creates a monitor. viralityThreshold <= 0 defaults to 1000 and
// historyWindow <= 0 defaults to 24h.
func NewMonitor(viralityThreshold int, historyWindow time.Duration) *Monitor {
	if viralityThreshold <= 0 {
		viralityThreshold = 1000
	}
	if historyWindow <= 0 {
		historyWindow = 24 * time.Hour
	}
	return &Monitor{
		keywords:          make(map[string]bool),
		hashtags:          make(map[string]bool),
		viralityThreshold: viralityThreshold,
		historyWindow:     historyWindow,
		now:               time.Now,
	}
}

// AddKeyword starts tracking a keyword, lowercase-normalized
func (m *Monitor) AddKeyword(keyword string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keywords[strings.ToLower(keyword)] = true
}

// AddHashtag starts tracking a hashtag; the leading '#' is stripped
func (m *Monitor) AddHashtag(hashtag string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashtags[strings.ToLower(strings.TrimPrefix(hashtag, "#"))] = true
}

// RemoveKeyword stops tracking a keyword
func (m *Monitor) RemoveKeyword(keyword string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keywords, strings.ToLower(keyword))
}

// RemoveHashtag stops tracking a hashtag
func (m *Monitor) RemoveHashtag(hashtag string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.hashtags, strings.ToLower(strings.TrimPrefix(hashtag, "#")))
}

// TrackedTerms lists the currently tracked keywords and hashtags
func (m *Monitor) TrackedTerms() map[string][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string][]string{
		"keywords": setToSorted(m.keywords),
		"hashtags": setToSorted(m.hashtags),
	}
}

// Monitor matches a batch of posts against the tracked terms, records the
// resulting trends in history, and returns the annotated batch with its
// trend summary. A nil batch falls back to the built-in sample feed.
func (m *Monitor) Monitor(posts []Post) ([]Post, Trends) {
	if posts == nil {
		posts = samplePosts(m.now())
	}

	m.mu.Lock()
	for i := range posts {
		posts[i].MatchedTerms = m.matchTermsLocked(posts[i].Content)
	}
	m.mu.Unlock()

	trends := m.AnalyzeTrends(posts)
	m.recordTrends(trends)

	return posts, trends
}

// AnalyzeTrends summarizes a batch of posts: platform mix, matched-term
// frequency, engagement banding, virality, sentiment and reach.
func (m *Monitor) AnalyzeTrends(posts []Post) Trends {
	trends := Trends{
		TotalPosts:       len(posts),
		Platforms:        make(map[string]int),
		TopTerms:         make(map[string]int),
		EngagementLevels: map[string]int{"high": 0, "medium": 0, "low": 0},
		Sentiment:        map[string]int{"positive": 0, "neutral": 0, "negative": 0},
	}

	for _, post := range posts {
		trends.Platforms[post.Platform]++

		for _, term := range post.MatchedTerms {
			trends.TopTerms[term]++
		}

		engagement := post.Engagement.Total()
		switch {
		case engagement > 1000:
			trends.EngagementLevels["high"]++
		case engagement > 100:
			trends.EngagementLevels["medium"]++
		default:
			trends.EngagementLevels["low"]++
		}

		if engagement > m.viralityThreshold {
			trends.Virality = append(trends.Virality, ViralPost{
				Content:    post.Content,
				Engagement: engagement,
				Platform:   post.Platform,
			})
		}

		sentiment := post.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		trends.Sentiment[sentiment]++

		trends.TotalReach += post.Reach
	}

	return trends
}

// ViralContent returns up to the top 10 viral posts seen in the retained
// trend history, by engagement descending.
func (m *Monitor) ViralContent() []ViralPost {
	m.mu.Lock()
	defer m.mu.Unlock()

	var viral []ViralPost
	for _, snapshot := range m.history {
		viral = append(viral, snapshot.Trends.Virality...)
	}
	sort.Slice(viral, func(i, j int) bool {
		return viral[i].Engagement > viral[j].Engagement
	})
	if len(viral) > 10 {
		viral = viral[:10]
	}
	return viral
}

// recordTrends appends a snapshot and prunes history past the window
func (m *Monitor) recordTrends(trends Trends) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.history = append(m.history, trendSnapshot{Timestamp: now, Trends: trends})

	cutoff := now.Add(-m.historyWindow)
	kept := m.history[:0]
	for _, snapshot := range m.history {
		if snapshot.Timestamp.After(cutoff) {
			kept = append(kept, snapshot)
		}
	}
	m.history = kept
}

// matchTermsLocked finds tracked keywords and hashtags in the content.
// Caller holds m.mu.
func (m *Monitor) matchTermsLocked(content string) []string {
	lower := strings.ToLower(content)

	var matched []string
	for keyword := range m.keywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	for hashtag := range m.hashtags {
		if strings.Contains(lower, "#"+hashtag) || strings.Contains(lower, hashtag) {
			matched = append(matched, hashtag)
		}
	}
	sort.Strings(matched)
	return matched
}

// samplePosts is the demo feed used when no posts are supplied
func samplePosts(now time.Time) []Post {
	return []Post{
		{
			Platform:   "Twitter",
			Content:    "Recent studies show significant climate change impact",
			Author:     "@climate_expert",
			Timestamp:  now,
			Engagement: Engagement{Likes: 1200, Shares: 450, Comments: 125},
			Sentiment:  "neutral",
			Reach:      15000,
		},
		{
			Platform:   "Facebook",
			Content:    "Breaking: NASA announces new findings about Mars atmosphere",
			Author:     "Space News Daily",
			Timestamp:  now,
			Engagement: Engagement{Likes: 3500, Shares: 890, Comments: 234},
			Sentiment:  "positive",
			Reach:      25000,
		},
	}
}

func setToSorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
