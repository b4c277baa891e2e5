// Package extraction coordinates one extraction pass: site detection,
// best-effort content expansion, selector-cascade extraction, and heuristic
// backfill into a normalized JobPosting.
package extraction

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jordan/job-tracker/internal/dom"
	"github.com/jordan/job-tracker/internal/heuristics"
	"github.com/jordan/job-tracker/internal/sites"
	"github.com/jordan/job-tracker/internal/types"
)

// DefaultExpandDelay is how long to wait for asynchronous content to render
// after activating a "show more" control.
const DefaultExpandDelay = 1 * time.Second

// Options configures an Orchestrator.
type Options struct {
	// ExpandDelay overrides DefaultExpandDelay. Zero means the default.
	ExpandDelay time.Duration
	// Verbose enables step logging.
	Verbose bool
	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// Orchestrator runs extraction passes. It is synchronous from the caller's
// perspective; the only suspension point is the bounded wait for expanded
// content.
type Orchestrator struct {
	expandDelay time.Duration
	verbose     bool
	now         func() time.Time
}

// Result is the outcome of one extraction pass.
type Result struct {
	Posting *types.JobPosting
	// IsJobPage reports whether the URL matched a known job-detail pattern.
	// Extraction proceeds either way; callers withhold the tracking
	// affordance on unrecognized pages.
	IsJobPage bool
	Site      sites.SiteKey
}

// New creates an Orchestrator.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		expandDelay: opts.ExpandDelay,
		verbose:     opts.Verbose,
		now:         opts.Now,
	}
	if o.expandDelay == 0 {
		o.expandDelay = DefaultExpandDelay
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}

// Extract runs one pass against doc. It never panics: any internal failure
// is caught at this boundary and reported as an error, and a page that
// yields no usable fields reports ErrNoJobData.
func (o *Orchestrator) Extract(ctx context.Context, doc dom.Document) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EXTRACT] recovered from internal error: %v", r)
			result = nil
			err = fmt.Errorf("extraction failed: internal error: %v", r)
		}
	}()

	pageURL := doc.URL()
	adapter := sites.Detect(hostnameOf(pageURL))
	isJobPage := adapter.IsJobPage(pageURL)

	if o.verbose {
		log.Printf("[EXTRACT] site=%s jobPage=%v url=%s", adapter.Key, isJobPage, pageURL)
	}

	o.expandDescription(ctx, doc, adapter)

	posting := adapter.Extract(doc)
	o.backfill(&posting, doc)
	posting.ExtractedAt = o.now().UTC()

	if !posting.IsUsable() {
		return &Result{Posting: nil, IsJobPage: isJobPage, Site: adapter.Key}, ErrNoJobData
	}
	return &Result{Posting: &posting, IsJobPage: isJobPage, Site: adapter.Key}, nil
}

// expandDescription looks for a "show more" control, activates the first one
// found, and waits a bounded delay for content to render, retrying the wait
// once if the description is still empty. Best-effort: nothing here is an
// error.
func (o *Orchestrator) expandDescription(ctx context.Context, doc dom.Document, adapter *sites.Adapter) {
	clicked := false
	for _, sel := range adapter.ShowMoreSelectors() {
		if doc.SimulateClick(sel) {
			clicked = true
			break
		}
	}
	if !clicked {
		return
	}

	if o.verbose {
		log.Printf("[EXTRACT] expanded description, waiting %s for content", o.expandDelay)
	}
	o.wait(ctx)

	// Single retry: give slow pages one more bounded window.
	if adapter.Extract(doc).Description == "" {
		o.wait(ctx)
	}
}

// wait suspends for the expand delay or until ctx is cancelled.
func (o *Orchestrator) wait(ctx context.Context) {
	timer := time.NewTimer(o.expandDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// backfill fills structured fields the site adapter could not provide,
// using the whole-page heuristics.
func (o *Orchestrator) backfill(posting *types.JobPosting, doc dom.Document) {
	pageText := doc.FullText()
	if pageText == "" && posting.Description == "" {
		return
	}

	posting.JobType = heuristics.JobType(pageText)
	posting.ExperienceLevel = heuristics.ExperienceLevel(pageText)
	if posting.LocationType == "" {
		posting.LocationType = heuristics.LocationType(pageText)
	}
	if posting.SalaryText == "" {
		posting.SalaryText = heuristics.SalaryText(pageText)
	}
	if posting.CompanySize == "" {
		posting.CompanySize = heuristics.CompanySize(pageText)
	}
	if posting.Industry == "" {
		posting.Industry = heuristics.Industry(pageText)
	}
	if len(posting.Skills) == 0 {
		text := posting.Description
		if text == "" {
			text = pageText
		}
		posting.Skills = heuristics.Skills(text)
	}
}

func hostnameOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
