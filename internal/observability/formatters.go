// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of an extracted posting.
func (p *Printer) PrintJobPosting(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", orDash(posting.Title)))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orDash(posting.CompanyName)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(posting.Location)))
	sb.WriteString(fmt.Sprintf("Platform: %s\n", orDash(string(posting.SourcePlatform))))

	if posting.JobType != "" || posting.ExperienceLevel != "" {
		sb.WriteString("\n")
		if posting.JobType != "" {
			sb.WriteString(fmt.Sprintf("Type:       %s\n", posting.JobType))
		}
		if posting.ExperienceLevel != "" {
			sb.WriteString(fmt.Sprintf("Experience: %s\n", posting.ExperienceLevel))
		}
	}
	if posting.SalaryText != "" {
		sb.WriteString(fmt.Sprintf("Salary:     %s\n", posting.SalaryText))
	}
	if posting.Industry != "" || posting.CompanySize != "" {
		if posting.Industry != "" {
			sb.WriteString(fmt.Sprintf("Industry:   %s\n", posting.Industry))
		}
		if posting.CompanySize != "" {
			sb.WriteString(fmt.Sprintf("Size:       %s\n", posting.CompanySize))
		}
	}

	if len(posting.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(posting.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", posting.Skills[i]))
		}
		if len(posting.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStep outputs a single pipeline step line, used between boxes.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(format string, args ...any) {
	fmt.Fprintf(p.out, "→ "+format+"\n", args...)
}

// PrintTrackOutcome outputs the result of a tracking submission.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTrackOutcome(posting *types.JobPosting, err error) {
	border := strings.Repeat("─", boxWidth-2)
	if err != nil {
		fmt.Fprintf(p.out, "┌%s┐\n", border)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✗ TRACKING FAILED")
		fmt.Fprintf(p.out, "├%s┤\n", border)
		msg := err.Error()
		if len(msg) > boxWidth-4 {
			msg = msg[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, msg)
		fmt.Fprintf(p.out, "└%s┘\n", border)
		return
	}

	label := "✓ TRACKED"
	if posting != nil && posting.Title != "" {
		label = fmt.Sprintf("✓ TRACKED: %s", posting.Title)
		if len(label) > boxWidth-4 {
			label = label[:boxWidth-7] + "..."
		}
	}
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, label)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
