package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/claimradar/claimradar/internal/pipeline"
	"github.com/claimradar/claimradar/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve starts the HTTP API with analysis, geographic hotspot,
dashboard and social monitoring endpoints, plus /health and
Prometheus /metrics.

Example:
  claimradar serve
  claimradar serve --addr :9090 --google`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verification result cache")
	serveCmd.Flags().BoolVar(&googleEnabled, "google", false, "enable the Google Fact Check Tools provider (needs GOOGLE_FACTCHECK_API_KEY)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(p, cfg).Run(ctx)
}
