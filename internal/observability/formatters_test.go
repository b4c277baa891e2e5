package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jordan/job-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobPosting(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	posting := &types.JobPosting{
		Title:           "Senior Engineer",
		CompanyName:     "Acme Corp",
		Location:        "Toronto, ON",
		SourcePlatform:  types.PlatformLinkedIn,
		JobType:         types.JobTypeFullTime,
		ExperienceLevel: types.LevelSenior,
		SalaryText:      "$150,000 - $180,000",
		Industry:        "Software",
		CompanySize:     "201-500",
		Skills:          []string{"go", "postgresql", "docker", "kubernetes", "aws", "terraform"},
	}

	p.PrintJobPosting(posting)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED JOB POSTING")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Toronto, ON")
	assert.Contains(t, output, "$150,000 - $180,000")
	assert.Contains(t, output, "go")
	assert.Contains(t, output, "and 1 more")
}

func TestPrintJobPosting_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobPosting(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobPosting_EmptyFieldsShowDash(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobPosting(&types.JobPosting{Title: "Engineer"})

	assert.Contains(t, buf.String(), "—")
}

func TestPrintStep(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStep("fetching %s", "https://example.com/jobs/1")

	assert.Equal(t, "→ fetching https://example.com/jobs/1\n", buf.String())
}

func TestPrintTrackOutcome_Success(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTrackOutcome(&types.JobPosting{Title: "Senior Engineer"}, nil)
	output := buf.String()

	assert.Contains(t, output, "✓ TRACKED: Senior Engineer")
}

func TestPrintTrackOutcome_Error(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTrackOutcome(nil, errors.New("job already tracked"))
	output := buf.String()

	assert.Contains(t, output, "✗ TRACKING FAILED")
	assert.Contains(t, output, "job already tracked")
}
