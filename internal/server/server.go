package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/claimradar/claimradar/internal/metrics"
	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/pipeline"
)

// Server is the HTTP API over the analysis pipeline
type Server struct {
	pipeline *pipeline.Pipeline
	config   *model.Config
	log      *slog.Logger
}

// New creates a server around an already-constructed pipeline
func New(p *pipeline.Pipeline, cfg *model.Config) *Server {
	return &Server{
		pipeline: p,
		config:   cfg,
		log:      slog.Default().With("component", "server"),
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	if !s.config.Output.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestMetrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "claimradar",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", s.handleAnalyze)

		api.GET("/geo/hotspots", s.handleHotspots)
		api.GET("/geo/country/:country", s.handleCountry)

		api.GET("/dashboard/stats", s.handleDashboardStats)
		api.GET("/dashboard/data", s.handleDashboardData)

		api.GET("/social/tracking", s.handleSocialTracking)
		api.POST("/social/tracking", s.handleSocialTrack)
		api.POST("/social/monitor", s.handleSocialMonitor)
	}

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// requestMetrics records request counts and latency per route
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequests.WithLabelValues(method, path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
