package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/job-tracker/internal/config"
	"github.com/jordan/job-tracker/internal/dom"
	"github.com/jordan/job-tracker/internal/extraction"
	"github.com/jordan/job-tracker/internal/fetch"
	"github.com/jordan/job-tracker/internal/llm"
	"github.com/jordan/job-tracker/internal/observability"
	"github.com/jordan/job-tracker/internal/sites"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a normalized job posting from a URL",
	Long: `Fetch a job page, run site detection and the selector cascade, backfill
missing fields with heuristics, and print the normalized posting as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runExtract,
}

var (
	extractConfigPath  string
	extractURL         string
	extractUseBrowser  bool
	extractExpandDelay int
	extractAPIKey      string
	extractRPS         float64
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Job page URL to extract")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	extractCmd.Flags().IntVar(&extractExpandDelay, "expand-delay", 0, "Milliseconds to wait after activating a 'show more' control")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key for optional enrichment (defaults to GEMINI_API_KEY env var)")
	extractCmd.Flags().Float64Var(&extractRPS, "rps", 0, "Per-host fetch rate limit in requests per second (0 = unlimited)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(extractConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("url") {
			c.URL = extractURL
		}
		if cmd.Flags().Changed("use-browser") {
			c.UseBrowser = extractUseBrowser
		}
		if cmd.Flags().Changed("expand-delay") {
			c.ExpandDelayMS = extractExpandDelay
		}
		if cmd.Flags().Changed("api-key") {
			c.APIKey = extractAPIKey
		}
		if cmd.Flags().Changed("rps") {
			c.RequestsPerSec = extractRPS
		}
		if cmd.Flags().Changed("verbose") {
			c.Verbose = extractVerbose
		}
	})
	if err != nil {
		return err
	}
	if cfg.URL == "" {
		return fmt.Errorf("--url must be provided (via flag or config)")
	}

	result, err := extractOne(ctx, cfg.URL, cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobPosting(result.Posting)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Posting)
}

// loadMergedConfig loads the optional config file, applies explicitly set
// CLI flags via apply, and fills remaining defaults.
func loadMergedConfig(configPath string, apply func(*config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	apply(&cfg)

	defaults := config.Config{
		ExpandDelayMS: 1000,
		APIBaseURL:    os.Getenv("TRACKER_API_URL"),
		Token:         os.Getenv("TRACKER_TOKEN"),
		ListenAddr:    ":8080",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg, nil
}

// extractOne runs the full extraction pipeline against a single URL.
func extractOne(ctx context.Context, pageURL string, cfg config.Config) (*extraction.Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}
	adapter := sites.Detect(parsed.Hostname())

	html, err := fetchPage(ctx, pageURL, adapter, cfg)
	if err != nil {
		return nil, err
	}

	doc, err := dom.ParseHTML(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	orchestrator := extraction.New(extraction.Options{
		ExpandDelay: time.Duration(cfg.ExpandDelayMS) * time.Millisecond,
		Verbose:     cfg.Verbose,
	})
	result, err := orchestrator.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	// Enrichment is best-effort: a missing key disables it, a failure only
	// costs the optional fields.
	enricher, err := llm.NewEnricherFromKey(ctx, cfg.APIKey)
	if err != nil {
		if cfg.Verbose {
			printer.PrintStep("enrichment unavailable: %v", err)
		}
		return result, nil
	}
	if enricher != nil {
		defer func() { _ = enricher.Close() }()
		if err := enricher.Enrich(ctx, result.Posting); err != nil && cfg.Verbose {
			printer.PrintStep("enrichment failed: %v", err)
		}
	}

	return result, nil
}

// fetchPage retrieves page HTML, escalating to the headless browser when the
// static fetch looks like an unrendered SPA shell.
func fetchPage(ctx context.Context, pageURL string, adapter *sites.Adapter, cfg config.Config) (string, error) {
	var showMore []string
	if adapter != nil {
		showMore = adapter.ShowMoreSelectors()
	}

	if cfg.UseBrowser {
		return fetch.RenderedSimple(ctx, pageURL, showMore, cfg.Verbose)
	}

	opts := fetch.DefaultOptions()
	if cfg.RequestsPerSec > 0 {
		opts.Limiter = fetch.NewHostLimiter(cfg.RequestsPerSec, 1)
	}
	result, err := fetch.URL(ctx, pageURL, opts)
	if err != nil {
		return "", err
	}

	if fetch.ShouldUseBrowser(result.HTML) {
		if cfg.Verbose {
			observability.NewPrinter(os.Stdout).PrintStep("static fetch looks unrendered, retrying with browser")
		}
		return fetch.RenderedSimple(ctx, pageURL, showMore, cfg.Verbose)
	}
	return result.HTML, nil
}
