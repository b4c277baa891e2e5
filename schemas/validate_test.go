package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/job-tracker/internal/types"
)

func TestSchemaFile_ValidJSON(t *testing.T) {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(jobPostingSchema), &v))
}

func TestValidateJobPosting_ValidPayload(t *testing.T) {
	posting := types.JobPosting{
		Title:           "Backend Engineer",
		CompanyName:     "Acme Corp",
		JobType:         types.JobTypeRemote,
		ExperienceLevel: types.LevelSenior,
		SourceURL:       "https://www.linkedin.com/jobs/view/123/",
		SourcePlatform:  types.PlatformLinkedIn,
		ExtractedAt:     time.Now().UTC(),
	}
	data, err := json.Marshal(posting)
	require.NoError(t, err)

	assert.NoError(t, ValidateJobPosting(data))
}

func TestValidateJobPosting_MissingSourceURL(t *testing.T) {
	err := ValidateJobPosting([]byte(`{"source_platform":"linkedin"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJobPosting_BadEnum(t *testing.T) {
	err := ValidateJobPosting([]byte(`{
		"source_url": "https://example.com/x",
		"source_platform": "myspace"
	}`))
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateJobPosting_MalformedJSON(t *testing.T) {
	err := ValidateJobPosting([]byte(`{not json`))
	require.Error(t, err)
}
