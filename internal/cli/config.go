package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/claimradar/claimradar/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// buildConfig assembles the runtime configuration: defaults, then config
// file / environment overrides via viper, then command flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.HTTP.Timeout = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetDuration("providers.rate_delay"); v > 0 {
		cfg.Providers.RateDelay = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetInt("social.virality_threshold"); v > 0 {
		cfg.Social.ViralityThreshold = v
	}
	if v := viper.GetDuration("social.history_window"); v > 0 {
		cfg.Social.HistoryWindow = v
	}

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if googleEnabled || viper.GetBool("providers.google.enabled") {
		apiKey := os.Getenv("GOOGLE_FACTCHECK_API_KEY")
		if apiKey == "" {
			apiKey = viper.GetString("providers.google.api_key")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_FACTCHECK_API_KEY environment variable not set")
		}
		cfg.Providers.Google.Enabled = true
		cfg.Providers.Google.APIKey = apiKey
		if v := viper.GetString("providers.google.base_url"); v != "" {
			cfg.Providers.Google.BaseURL = v
		}
	}

	return cfg, nil
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ClaimRadar configuration",
	Long: `Manage ClaimRadar configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CLAIMRADAR_*)
3. Config file (~/.claimradar/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()

		configFile := viper.ConfigFileUsed()
		if configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		fmt.Println(string(yamlData))
		fmt.Println("Configuration hierarchy (highest to lowest priority):")
		fmt.Println("  1. CLI flags")
		fmt.Println("  2. Environment variables (CLAIMRADAR_*, GOOGLE_FACTCHECK_API_KEY)")
		fmt.Println("  3. Config file (~/.claimradar/config.yaml)")
		fmt.Println("  4. Defaults (shown above)")
		fmt.Println()

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := home + "/.claimradar"
		configPath := configDir + "/config.yaml"

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'claimradar config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		yamlData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		header := fmt.Sprintf(`# ClaimRadar Configuration File
# Generated %s
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (CLAIMRADAR_*)
#   3. This config file
#   4. Built-in defaults

`, time.Now().UTC().Format("2006-01-02"))

		footer := `
# Provider API keys (recommended to use environment variables instead):
#   export GOOGLE_FACTCHECK_API_KEY=...
`

		content := append([]byte(header), yamlData...)
		content = append(content, []byte(footer)...)
		if err := os.WriteFile(configPath, content, 0644); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		fmt.Printf("✓ Created default configuration: %s\n", configPath)
		fmt.Printf("\nTo view the configuration:\n")
		fmt.Printf("  claimradar config show\n\n")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
