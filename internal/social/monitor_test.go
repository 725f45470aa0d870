package social

import (
	"testing"
	"time"
)

func TestMonitor_TrackedTerms(t *testing.T) {
	m := NewMonitor(0, 0)

	m.AddKeyword("Climate")
	m.AddKeyword("vaccine")
	m.AddHashtag("#FactCheck")
	m.RemoveKeyword("climate")

	terms := m.TrackedTerms()

	if len(terms["keywords"]) != 1 || terms["keywords"][0] != "vaccine" {
		t.Errorf("Unexpected keywords: %v", terms["keywords"])
	}
	if len(terms["hashtags"]) != 1 || terms["hashtags"][0] != "factcheck" {
		t.Errorf("Expected hashtag normalized without '#', got %v", terms["hashtags"])
	}
}

func TestMonitor_MatchesTerms(t *testing.T) {
	m := NewMonitor(0, 0)
	m.AddKeyword("climate")
	m.AddHashtag("mars")

	posts := []Post{
		{Platform: "Twitter", Content: "New data on Climate change released"},
		{Platform: "Facebook", Content: "Mission to #Mars announced"},
		{Platform: "Twitter", Content: "Nothing relevant here"},
	}

	annotated, trends := m.Monitor(posts)

	if len(annotated[0].MatchedTerms) != 1 || annotated[0].MatchedTerms[0] != "climate" {
		t.Errorf("Expected climate match, got %v", annotated[0].MatchedTerms)
	}
	if len(annotated[1].MatchedTerms) != 1 || annotated[1].MatchedTerms[0] != "mars" {
		t.Errorf("Expected mars match, got %v", annotated[1].MatchedTerms)
	}
	if len(annotated[2].MatchedTerms) != 0 {
		t.Errorf("Expected no match, got %v", annotated[2].MatchedTerms)
	}
	if trends.TotalPosts != 3 {
		t.Errorf("Expected 3 posts in trends, got %d", trends.TotalPosts)
	}
	if trends.Platforms["Twitter"] != 2 || trends.Platforms["Facebook"] != 1 {
		t.Errorf("Unexpected platform mix: %v", trends.Platforms)
	}
	if trends.TopTerms["climate"] != 1 || trends.TopTerms["mars"] != 1 {
		t.Errorf("Unexpected term counts: %v", trends.TopTerms)
	}
}

func TestMonitor_SampleFeedFallback(t *testing.T) {
	m := NewMonitor(0, 0)

	posts, trends := m.Monitor(nil)

	if len(posts) == 0 {
		t.Fatal("Expected built-in sample feed")
	}
	if trends.TotalPosts != len(posts) {
		t.Errorf("Trend count %d does not match posts %d", trends.TotalPosts, len(posts))
	}
	if trends.TotalReach == 0 {
		t.Error("Expected nonzero reach from sample feed")
	}
}

func TestMonitor_EngagementBands(t *testing.T) {
	m := NewMonitor(0, 0)

	posts := []Post{
		{Content: "low", Engagement: Engagement{Likes: 10}},
		{Content: "medium", Engagement: Engagement{Likes: 100, Shares: 30}},
		{Content: "high", Engagement: Engagement{Likes: 900, Shares: 200, Comments: 100}},
	}

	trends := m.AnalyzeTrends(posts)

	if trends.EngagementLevels["low"] != 1 ||
		trends.EngagementLevels["medium"] != 1 ||
		trends.EngagementLevels["high"] != 1 {
		t.Errorf("Unexpected banding: %v", trends.EngagementLevels)
	}
}

func TestEngagement_Total(t *testing.T) {
	e := Engagement{Likes: 10, Shares: 5, Comments: 2}
	// shares x2, comments x3
	if got := e.Total(); got != 26 {
		t.Errorf("Expected weighted total 26, got %d", got)
	}
}

func TestMonitor_ViralContent(t *testing.T) {
	m := NewMonitor(500, time.Hour)

	posts := []Post{
		{Content: "quiet", Engagement: Engagement{Likes: 50}},
		{Content: "loud", Engagement: Engagement{Likes: 400, Shares: 100}},
		{Content: "louder", Engagement: Engagement{Likes: 1000, Shares: 500}},
	}
	m.Monitor(posts)

	viral := m.ViralContent()

	if len(viral) != 2 {
		t.Fatalf("Expected 2 viral posts, got %d", len(viral))
	}
	if viral[0].Content != "louder" {
		t.Errorf("Expected highest engagement first, got %q", viral[0].Content)
	}
}

func TestMonitor_HistoryPruned(t *testing.T) {
	m := NewMonitor(100, time.Hour)

	past := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return past }
	m.Monitor([]Post{{Content: "old viral", Engagement: Engagement{Likes: 5000}}})

	m.now = func() time.Time { return past.Add(2 * time.Hour) }
	m.Monitor([]Post{{Content: "new viral", Engagement: Engagement{Likes: 5000}}})

	viral := m.ViralContent()

	if len(viral) != 1 || viral[0].Content != "new viral" {
		t.Errorf("Expected old snapshot pruned, got %v", viral)
	}
}

func TestMonitor_SentimentDefaultsNeutral(t *testing.T) {
	m := NewMonitor(0, 0)

	trends := m.AnalyzeTrends([]Post{
		{Content: "a"},
		{Content: "b", Sentiment: "negative"},
	})

	if trends.Sentiment["neutral"] != 1 || trends.Sentiment["negative"] != 1 {
		t.Errorf("Unexpected sentiment distribution: %v", trends.Sentiment)
	}
}
