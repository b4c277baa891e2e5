package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/job-tracker/internal/types"
)

func TestReadURLFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "urls.txt")

	content := `https://www.linkedin.com/jobs/view/123

# staging environment, re-enable later
https://www.indeed.com/viewjob?jk=abc
  https://wellfound.com/jobs/456
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	urls, err := readURLFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://www.linkedin.com/jobs/view/123",
		"https://www.indeed.com/viewjob?jk=abc",
		"https://wellfound.com/jobs/456",
	}, urls)
}

func TestReadURLFile_Missing(t *testing.T) {
	_, err := readURLFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestDescribePosting(t *testing.T) {
	tests := []struct {
		name     string
		posting  *types.JobPosting
		expected string
	}{
		{
			name: "title and company",
			posting: &types.JobPosting{
				Title:       "Backend Engineer",
				CompanyName: "Acme",
				SourceURL:   "https://example.com/jobs/1",
			},
			expected: "Backend Engineer @ Acme",
		},
		{
			name: "title only",
			posting: &types.JobPosting{
				Title:     "Backend Engineer",
				SourceURL: "https://example.com/jobs/1",
			},
			expected: "Backend Engineer",
		},
		{
			name: "falls back to URL",
			posting: &types.JobPosting{
				SourceURL: "https://example.com/jobs/1",
			},
			expected: "https://example.com/jobs/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describePosting(tt.posting))
		})
	}
}
