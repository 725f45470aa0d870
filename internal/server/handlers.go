package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/social"
)

// analyzeRequest is the POST /api/v1/analyze body
type analyzeRequest struct {
	Content  string         `json:"content" binding:"required"`
	Location model.Location `json:"location"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.pipeline.Analyze(c.Request.Context(), req.Content, req.Location)
	if err != nil {
		s.log.Error("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHotspots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hotspots": s.pipeline.Tracker().Hotspots(),
	})
}

func (s *Server) handleCountry(c *gin.Context) {
	stats := s.pipeline.Tracker().RegionalTrends(c.Param("country"))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleDashboardStats(c *gin.Context) {
	tracker := s.pipeline.Tracker()
	countries := tracker.ActiveCountries()

	c.JSON(http.StatusOK, gin.H{
		"total_claims":     tracker.TotalClaims(),
		"active_countries": len(countries),
		"countries":        countries,
		"accuracy_rate":    tracker.AccuracyRate(),
		"trending_topics":  tracker.TrendingTopics(5),
	})
}

func (s *Server) handleDashboardData(c *gin.Context) {
	tracker := s.pipeline.Tracker()

	c.JSON(http.StatusOK, gin.H{
		"hotspots":        tracker.Hotspots(),
		"timeline":        tracker.Timeline(),
		"recent_claims":   tracker.RecentClaims(20),
		"trending_topics": tracker.TrendingTopics(10),
		"viral_content":   s.pipeline.SocialMonitor().ViralContent(),
	})
}

func (s *Server) handleSocialTracking(c *gin.Context) {
	c.JSON(http.StatusOK, s.pipeline.SocialMonitor().TrackedTerms())
}

// socialTrackRequest adds or removes tracked keywords and hashtags
type socialTrackRequest struct {
	Keywords []string `json:"keywords"`
	Hashtags []string `json:"hashtags"`
	Remove   bool     `json:"remove"`
}

func (s *Server) handleSocialTrack(c *gin.Context) {
	var req socialTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Keywords) == 0 && len(req.Hashtags) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no keywords or hashtags given"})
		return
	}

	monitor := s.pipeline.SocialMonitor()
	for _, keyword := range req.Keywords {
		if req.Remove {
			monitor.RemoveKeyword(keyword)
		} else {
			monitor.AddKeyword(keyword)
		}
	}
	for _, hashtag := range req.Hashtags {
		if req.Remove {
			monitor.RemoveHashtag(hashtag)
		} else {
			monitor.AddHashtag(hashtag)
		}
	}

	c.JSON(http.StatusOK, monitor.TrackedTerms())
}

// socialMonitorRequest carries an optional batch of posts; when omitted the
// monitor runs over its sample feed
type socialMonitorRequest struct {
	Posts []social.Post `json:"posts"`
}

func (s *Server) handleSocialMonitor(c *gin.Context) {
	var req socialMonitorRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	posts, trends := s.pipeline.SocialMonitor().Monitor(req.Posts)

	c.JSON(http.StatusOK, gin.H{
		"posts":  posts,
		"trends": trends,
	})
}
