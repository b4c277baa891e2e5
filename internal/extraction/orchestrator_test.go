package extraction

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/job-tracker/internal/dom"
	"github.com/jordan/job-tracker/internal/sites"
	"github.com/jordan/job-tracker/internal/types"
)

const linkedInHTML = `
<html><body>
  <div class="jobs-unified-top-card__job-title"><h1>Backend Engineer</h1></div>
  <a href="https://www.linkedin.com/company/acme">Acme Corp</a>
  <div class="jobs-description__content">
    Remote position. We want someone with 5+ years of experience running
    PostgreSQL and Kubernetes in production at our fintech company of 47 employees.
    Compensation: $150,000 per year.
  </div>
</body></html>`

func testOrchestrator() *Orchestrator {
	return New(Options{ExpandDelay: time.Millisecond})
}

func TestExtract_LinkedInEndToEnd(t *testing.T) {
	doc, err := dom.ParseHTML(linkedInHTML, "https://www.linkedin.com/jobs/view/123/")
	require.NoError(t, err)

	result, err := testOrchestrator().Extract(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, result.Posting)

	p := result.Posting
	assert.Equal(t, "Backend Engineer", p.Title)
	assert.Equal(t, "Acme Corp", p.CompanyName)
	assert.Equal(t, types.JobTypeRemote, p.JobType)
	assert.Equal(t, types.LevelSenior, p.ExperienceLevel)
	assert.Equal(t, types.LocationRemote, p.LocationType)
	assert.Equal(t, "11-50", p.CompanySize)
	assert.Equal(t, "Financial Technology", p.Industry)
	assert.Equal(t, "$150,000 per year", p.SalaryText)
	assert.Contains(t, p.Skills, "SQL")
	assert.Contains(t, p.Skills, "Kubernetes")
	assert.Equal(t, types.PlatformLinkedIn, p.SourcePlatform)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/123/", p.SourceURL)
	assert.False(t, p.ExtractedAt.IsZero())
	assert.True(t, result.IsJobPage)
	assert.Equal(t, sites.SiteLinkedIn, result.Site)
}

func TestExtract_GenericEndToEnd(t *testing.T) {
	doc, err := dom.ParseHTML(`<html><body><h1>Data Analyst</h1></body></html>`,
		"https://jobs.example.com/openings/42")
	require.NoError(t, err)

	result, err := testOrchestrator().Extract(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, result.Posting)

	assert.Equal(t, "Data Analyst", result.Posting.Title)
	assert.Equal(t, "", result.Posting.CompanyName)
	assert.Equal(t, types.PlatformOther, result.Posting.SourcePlatform)
	assert.False(t, result.IsJobPage)
}

func TestExtract_EmptyPageReportsNoJobData(t *testing.T) {
	doc, err := dom.ParseHTML(`<html><body></body></html>`, "https://example.com/")
	require.NoError(t, err)

	result, err := testOrchestrator().Extract(context.Background(), doc)
	assert.ErrorIs(t, err, ErrNoJobData)
	require.NotNil(t, result)
	assert.Nil(t, result.Posting)
}

func TestExtract_Idempotent(t *testing.T) {
	doc, err := dom.ParseHTML(linkedInHTML, "https://www.linkedin.com/jobs/view/123/")
	require.NoError(t, err)

	o := testOrchestrator()
	first, err := o.Extract(context.Background(), doc)
	require.NoError(t, err)
	second, err := o.Extract(context.Background(), doc)
	require.NoError(t, err)

	a, b := *first.Posting, *second.Posting
	a.ExtractedAt, b.ExtractedAt = time.Time{}, time.Time{}
	assert.Equal(t, a, b)
}

// expandableDoc renders its description only after the show-more control has
// been clicked, mimicking asynchronous content on a live page.
type expandableDoc struct {
	expanded    bool
	description string
}

func (d *expandableDoc) URL() string { return "https://www.linkedin.com/jobs/view/9/" }
func (d *expandableDoc) QueryText(selector string) string {
	switch {
	case strings.Contains(selector, "job-title"):
		return "Platform Engineer"
	case strings.Contains(selector, "description") && d.expanded:
		return d.description
	}
	return ""
}
func (d *expandableDoc) QueryAttribute(string, string) string    { return "" }
func (d *expandableDoc) QueryAllText(string, int) []string       { return nil }
func (d *expandableDoc) FullText() string                        { return "Platform Engineer " + d.description }
func (d *expandableDoc) SimulateClick(selector string) bool {
	if strings.Contains(selector, "footer-button") {
		d.expanded = true
		return true
	}
	return false
}

func TestExtract_ExpandsDescriptionBeforeQuerying(t *testing.T) {
	doc := &expandableDoc{description: "Operate the deployment platform."}

	result, err := testOrchestrator().Extract(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", result.Posting.Title)
	assert.Equal(t, "Operate the deployment platform.", result.Posting.Description)
}

// panickyDoc forces an internal failure to verify the recovery boundary.
type panickyDoc struct{}

func (panickyDoc) URL() string                        { return "https://example.com/x" }
func (panickyDoc) QueryText(string) string            { panic("selector engine exploded") }
func (panickyDoc) QueryAttribute(string, string) string { return "" }
func (panickyDoc) QueryAllText(string, int) []string  { return nil }
func (panickyDoc) FullText() string                   { return "" }
func (panickyDoc) SimulateClick(string) bool          { return false }

func TestExtract_RecoversFromPanic(t *testing.T) {
	result, err := testOrchestrator().Extract(context.Background(), panickyDoc{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJobData)
	assert.Nil(t, result)
}

func TestWatcher_DebouncesRapidNavigation(t *testing.T) {
	var fired atomic.Int32
	var last atomic.Value

	w := NewWatcher(20*time.Millisecond, func(url string) {
		fired.Add(1)
		last.Store(url)
	})
	defer w.Stop()

	w.OnURLChange("https://www.linkedin.com/jobs/view/1/")
	w.OnURLChange("https://www.linkedin.com/jobs/view/2/")
	w.OnURLChange("https://www.linkedin.com/jobs/view/3/")

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/3/", last.Load())

	// Same URL again is not a navigation.
	w.OnURLChange("https://www.linkedin.com/jobs/view/3/")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
