package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/pipeline"
	"github.com/claimradar/claimradar/internal/worker"
	"github.com/spf13/cobra"
)

var (
	analyzeFile    string
	analyzeCountry string
	analyzeTimeout time.Duration
	concurrency    int
	outJSON        string
	noCache        bool
	googleEnabled  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Extract, verify and score claims in text",
	Long: `Analyze extracts factual claims from the given text, verifies each
against the configured fact-check providers, and scores credibility.

Input is the text argument, or with --file a document file
(one document per line, '#' comments skipped) processed in parallel.
HTML input is reduced to its visible text first.

Example:
  claimradar analyze "The FDA reported 1000 new cases."
  claimradar analyze --file statements.txt --concurrency 8
  claimradar analyze "Vaccines cause autism" --country USA --json result.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "analyze documents from a file, one per line")
	analyzeCmd.Flags().StringVar(&analyzeCountry, "country", "", "country to attribute the claims to (e.g. USA)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers for --file")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write results as JSON to this path ('-' for stdout)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verification result cache")
	analyzeCmd.Flags().BoolVar(&googleEnabled, "google", false, "enable the Google Fact Check Tools provider (needs GOOGLE_FACTCHECK_API_KEY)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFile == "" && len(args) == 0 {
		return fmt.Errorf("give text to analyze or --file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	location := model.Location{Country: analyzeCountry}

	var results []*worker.AnalyzeResult
	if analyzeFile != "" {
		processor := worker.NewBatchProcessor(p, concurrency)
		results, err = processor.ProcessFile(ctx, analyzeFile, location)
		if err != nil {
			return fmt.Errorf("process file: %w", err)
		}
	} else {
		result, err := p.Analyze(ctx, args[0], location)
		results = []*worker.AnalyzeResult{{Document: args[0], Result: result, Error: err}}
	}

	failures := 0
	for _, res := range results {
		if res.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ analysis failed: %v\n", res.Error)
			continue
		}
		printResult(res.Result)
	}

	if outJSON != "" {
		if err := writeJSON(results, outJSON); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(results))
	}
	return nil
}

func printResult(result *model.AnalysisResult) {
	if len(result.Claims) == 0 {
		fmt.Println("No verifiable claims found.")
		return
	}

	for _, ca := range result.Claims {
		fmt.Printf("Claim: %s\n", ca.Claim.Text)
		fmt.Printf("  Verified:   %v (%d matching facts, sources: %v)\n",
			ca.FactCheck.Verified, len(ca.FactCheck.Facts), ca.FactCheck.Sources)
		fmt.Printf("  Score:      %.2f (risk: %s)\n", ca.Score.Score, ca.Score.RiskLevel)
		for _, line := range ca.Score.Reasoning {
			fmt.Printf("    - %s\n", line)
		}
		fmt.Println()
	}

	fmt.Printf("%d claims, %d high risk\n", len(result.Claims), result.HighRiskCount())
}

func writeJSON(results []*worker.AnalyzeResult, path string) error {
	out := make([]*model.AnalysisResult, 0, len(results))
	for _, res := range results {
		if res.Result != nil {
			out = append(out, res.Result)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
