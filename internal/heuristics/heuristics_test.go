package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/job-tracker/internal/types"
)

func TestJobType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.JobType
	}{
		{"remote outranks full-time", "This is a Remote full-time position", types.JobTypeRemote},
		{"full-time", "We are hiring a full-time engineer", types.JobTypeFullTime},
		{"part-time", "Part time barista wanted", types.JobTypePartTime},
		{"contract", "6 month contract role", types.JobTypeContract},
		{"internship", "Summer internship program", types.JobTypeInternship},
		{"temporary", "Seasonal warehouse associate", types.JobTypeTemporary},
		{"volunteer", "Volunteer coordinator", types.JobTypeVolunteer},
		{"default is full-time", "Software Engineer at Acme", types.JobTypeFullTime},
		{"case insensitive", "REMOTE OK", types.JobTypeRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JobType(tt.text))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ExperienceLevel
	}{
		{"five plus years is senior", "We need someone with 5+ years building services", types.LevelSenior},
		{"two years is mid", "2 years of experience required", types.LevelMid},
		{"one year is entry", "1 year of experience", types.LevelEntry},
		{"twelve years is principal", "12+ years experience", types.LevelPrincipal},
		{"senior keyword", "Senior Backend Engineer", types.LevelSenior},
		{"principal keyword", "Principal Engineer opening", types.LevelPrincipal},
		{"management keyword", "Engineering Manager, Platform", types.LevelManagement},
		{"manager outranks senior keyword", "Senior Engineering Manager", types.LevelManagement},
		{"entry keyword", "Junior developer, entry level", types.LevelEntry},
		{"default is mid", "Backend Engineer at Acme", types.LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceLevel(tt.text))
		})
	}
}

func TestLocationType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.LocationType
	}{
		{"hybrid outranks remote", "Hybrid remote, 2 days in office", types.LocationHybrid},
		{"remote", "Fully remote team", types.LocationRemote},
		{"onsite", "On-site in Austin", types.LocationOnsite},
		{"no signal", "Backend Engineer", types.LocationType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocationType(tt.text))
		})
	}
}

func TestCompanySize_StructuredCounts(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"10,001+ employees", "10001+"},
		{"47 employees", "11-50"},
		{"5 employees", "1-10"},
		{"201 employees", "201-500"},
		{"500 employees", "201-500"},
		{"501 employees", "501-1000"},
		{"3,200 employees", "1001-5000"},
		{"7500 employees", "5001-10000"},
		{"12k employees", "10001+"},
		{"no size mentioned here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanySize(tt.text))
		})
	}
}

func TestCompanySize_KeywordFallback(t *testing.T) {
	assert.Equal(t, "1-10", CompanySize("We are an early-stage startup"))
	assert.Equal(t, "10001+", CompanySize("Join a Fortune 500 leader"))
}

func TestSalaryText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"range", "Compensation: $120,000 - $150,000 annually", "$120,000 - $150,000 annually"},
		{"k range", "Pay: $120k-$150k", "$120k-$150k"},
		{"hourly", "Rate is $45/hr for this role", "$45/hr"},
		{"per year", "$160,000 per year plus equity", "$160,000 per year"},
		{"keyword fallback", "We offer a competitive salary and benefits", "competitive salary"},
		{"no signal", "Great benefits package", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalaryText(tt.text))
		})
	}
}

func TestNormalizeIndustry(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Healthcare", "Healthcare"},
		{"healthcare", "Healthcare"},
		{"Healthcare Services", "Healthcare"},
		{"Gaming", "Gaming"},
		{"fintech", "Financial Technology"},
		{"Software Development and IT Services", "Software Development"},
		{"Underwater Basket Weaving", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIndustry(tt.raw))
		})
	}
}

func TestIndustry_PageScan(t *testing.T) {
	assert.Equal(t, "Financial Technology", Industry("Acme is a fast-growing fintech company"))
	assert.Equal(t, "", Industry("Acme makes widgets"))
}

func TestSkills(t *testing.T) {
	text := "Experience with Python, PostgreSQL and Kubernetes. Familiarity with Docker a plus."
	skills := Skills(text)
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "SQL")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
	assert.NotContains(t, skills, "Rust")

	assert.Nil(t, Skills("We sell artisanal candles"))
}
