package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jordan/job-tracker/internal/client"
	"github.com/jordan/job-tracker/internal/config"
	"github.com/jordan/job-tracker/internal/extraction"
	"github.com/jordan/job-tracker/internal/observability"
	"github.com/jordan/job-tracker/internal/tracking"
	"github.com/jordan/job-tracker/internal/types"
)

// batchFetchLimit bounds concurrent page fetches in --url-file mode.
const batchFetchLimit = 4

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Extract a job posting and submit it to the persistence API",
	Long: `Run the extraction pipeline against one URL (or a file of URLs) and submit
each usable posting to the persistence API as a tracked application.

Requires a login token; run 'job_tracker login' first or set TRACKER_TOKEN.`,
	RunE: runTrack,
}

var (
	trackConfigPath  string
	trackURL         string
	trackURLFile     string
	trackAPIBaseURL  string
	trackToken       string
	trackUseBrowser  bool
	trackExpandDelay int
	trackAPIKey      string
	trackRPS         float64
	trackVerbose     bool
)

func init() {
	trackCmd.Flags().StringVar(&trackConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	trackCmd.Flags().StringVarP(&trackURL, "url", "u", "", "Job page URL to track (mutually exclusive with --url-file)")
	trackCmd.Flags().StringVar(&trackURLFile, "url-file", "", "Path to a file with one URL per line (mutually exclusive with --url)")
	trackCmd.Flags().StringVar(&trackAPIBaseURL, "api-url", "", "Persistence API root URL (defaults to TRACKER_API_URL env var)")
	trackCmd.Flags().StringVar(&trackToken, "token", "", "Bearer token (defaults to TRACKER_TOKEN env var)")
	trackCmd.Flags().BoolVar(&trackUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	trackCmd.Flags().IntVar(&trackExpandDelay, "expand-delay", 0, "Milliseconds to wait after activating a 'show more' control")
	trackCmd.Flags().StringVar(&trackAPIKey, "api-key", "", "Gemini API key for optional enrichment (defaults to GEMINI_API_KEY env var)")
	trackCmd.Flags().Float64Var(&trackRPS, "rps", 0, "Per-host fetch rate limit in requests per second (0 = unlimited)")
	trackCmd.Flags().BoolVarP(&trackVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(trackConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("url") {
			c.URL = trackURL
		}
		if cmd.Flags().Changed("url-file") {
			c.URLFile = trackURLFile
		}
		if cmd.Flags().Changed("api-url") {
			c.APIBaseURL = trackAPIBaseURL
		}
		if cmd.Flags().Changed("token") {
			c.Token = trackToken
		}
		if cmd.Flags().Changed("use-browser") {
			c.UseBrowser = trackUseBrowser
		}
		if cmd.Flags().Changed("expand-delay") {
			c.ExpandDelayMS = trackExpandDelay
		}
		if cmd.Flags().Changed("api-key") {
			c.APIKey = trackAPIKey
		}
		if cmd.Flags().Changed("rps") {
			c.RequestsPerSec = trackRPS
		}
		if cmd.Flags().Changed("verbose") {
			c.Verbose = trackVerbose
		}
	})
	if err != nil {
		return err
	}

	if cfg.URL == "" && cfg.URLFile == "" {
		return fmt.Errorf("either --url or --url-file must be provided (via flag or config)")
	}
	if cfg.URL != "" && cfg.URLFile != "" {
		return fmt.Errorf("--url and --url-file are mutually exclusive; provide only one")
	}
	if cfg.APIBaseURL == "" {
		return fmt.Errorf("--api-url or TRACKER_API_URL is required")
	}

	api, err := client.New(client.Options{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.Token,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if cfg.URL != "" {
		return trackSingle(ctx, api, cfg.URL, cfg)
	}
	return trackBatch(ctx, api, cfg)
}

// trackSingle extracts one URL and submits it through the tracking
// coordinator, so cooldown and busy-state semantics match the button UI.
func trackSingle(ctx context.Context, api *client.Client, pageURL string, cfg config.Config) error {
	printer := observability.NewPrinter(os.Stdout)

	result, err := extractOne(ctx, pageURL, cfg)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintJobPosting(result.Posting)
	}

	coordinator := tracking.NewCoordinator(api)
	err = coordinator.Track(ctx, result.Posting)
	printer.PrintTrackOutcome(result.Posting, err)
	return err
}

// trackBatch extracts every URL in the file concurrently, then submits the
// usable postings one at a time. Submission stays sequential: the API
// applies per-user rate limits, and a batch is not a reason to race it.
func trackBatch(ctx context.Context, api *client.Client, cfg config.Config) error {
	urls, err := readURLFile(cfg.URLFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %s", cfg.URLFile)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStep("extracting %d URLs", len(urls))

	// Each goroutine writes its own slot, so no lock is needed.
	results := make([]*extraction.Result, len(urls))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(batchFetchLimit)
	for i, pageURL := range urls {
		group.Go(func() error {
			result, err := extractOne(groupCtx, pageURL, cfg)
			if err != nil {
				// A single bad URL should not sink the batch.
				printer.PrintStep("skipping %s: %v", pageURL, err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	cooldowns := tracking.NewCooldowns(tracking.DefaultCooldown)
	var tracked, skipped, failed int
	for _, result := range results {
		if result == nil {
			failed++
			continue
		}
		posting := result.Posting

		key := tracking.IdentityKey(posting.CompanyName, posting.Title, posting.SourceURL)
		if remaining := cooldowns.RemainingSeconds(key); remaining > 0 {
			printer.PrintStep("skipping duplicate in batch: %s", describePosting(posting))
			skipped++
			continue
		}

		if err := api.SubmitJobPosting(ctx, posting); err != nil {
			printer.PrintTrackOutcome(posting, err)
			failed++
			continue
		}
		cooldowns.Record(key)
		printer.PrintTrackOutcome(posting, nil)
		tracked++
	}

	printer.PrintStep("done: %d tracked, %d skipped, %d failed", tracked, skipped, failed)
	if tracked == 0 && failed > 0 {
		return fmt.Errorf("no postings were tracked")
	}
	return nil
}

func readURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL file: %w", err)
	}
	return urls, nil
}

func describePosting(posting *types.JobPosting) string {
	if posting.Title != "" && posting.CompanyName != "" {
		return fmt.Sprintf("%s @ %s", posting.Title, posting.CompanyName)
	}
	if posting.Title != "" {
		return posting.Title
	}
	return posting.SourceURL
}
