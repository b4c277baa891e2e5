// Package types provides type definitions for structured data used throughout the job-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SourcePlatform identifies the job board a posting was extracted from.
type SourcePlatform string

const (
	// PlatformLinkedIn is linkedin.com
	PlatformLinkedIn SourcePlatform = "linkedin"
	// PlatformIndeed is indeed.com
	PlatformIndeed SourcePlatform = "indeed"
	// PlatformGlassdoor is glassdoor.com
	PlatformGlassdoor SourcePlatform = "glassdoor"
	// PlatformGoogle is Google Jobs result pages
	PlatformGoogle SourcePlatform = "google"
	// PlatformDice is dice.com
	PlatformDice SourcePlatform = "dice"
	// PlatformMonster is monster.com
	PlatformMonster SourcePlatform = "monster"
	// PlatformZipRecruiter is ziprecruiter.com
	PlatformZipRecruiter SourcePlatform = "ziprecruiter"
	// PlatformStackOverflow is stackoverflow.com/jobs
	PlatformStackOverflow SourcePlatform = "stackoverflow"
	// PlatformAngel is angel.co (legacy AngelList domain)
	PlatformAngel SourcePlatform = "angel"
	// PlatformWellfound is wellfound.com (current AngelList domain)
	PlatformWellfound SourcePlatform = "wellfound"
	// PlatformOther is any unrecognized site
	PlatformOther SourcePlatform = "other"
)

// JobType classifies the employment arrangement of a posting.
type JobType string

// Recognized job types. "remote" is deliberately part of this set: when a
// posting advertises remote work, that classification outranks the
// contractual arrangement keywords.
const (
	JobTypeRemote     JobType = "remote"
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
	JobTypeVolunteer  JobType = "volunteer"
)

// ExperienceLevel classifies seniority inferred from a posting.
type ExperienceLevel string

// Recognized experience levels.
const (
	LevelEntry      ExperienceLevel = "entry"
	LevelMid        ExperienceLevel = "mid"
	LevelSenior     ExperienceLevel = "senior"
	LevelPrincipal  ExperienceLevel = "principal"
	LevelManagement ExperienceLevel = "management"
)

// LocationType classifies where the work happens.
type LocationType string

// Recognized location types.
const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

// JobPosting is the normalized record produced by one extraction pass.
// It is ephemeral: rebuilt from the document on every extraction, never
// persisted by the pipeline itself. SourceURL and SourcePlatform are always
// set; every other field is best-effort and may be empty.
type JobPosting struct {
	Title           string          `json:"title,omitempty"`
	CompanyName     string          `json:"company_name,omitempty"`
	CompanyURL      string          `json:"company_url,omitempty"`
	Location        string          `json:"location,omitempty"`
	LocationType    LocationType    `json:"location_type,omitempty"`
	Description     string          `json:"description,omitempty"`
	SalaryText      string          `json:"salary_text,omitempty"`
	JobType         JobType         `json:"job_type,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	CompanySize     string          `json:"company_size,omitempty"` // bucketed range, e.g. "11-50"
	Industry        string          `json:"industry,omitempty"`
	Skills          []string        `json:"skills,omitempty"`

	SourceURL      string         `json:"source_url"`
	SourcePlatform SourcePlatform `json:"source_platform"`
	ExtractedAt    time.Time      `json:"extracted_at"`
}

// IsUsable reports whether the extraction produced anything beyond the
// always-present source fields. An unusable posting is surfaced to the user
// as "could not extract job data".
func (p *JobPosting) IsUsable() bool {
	return p.Title != "" || p.CompanyName != "" || p.Description != "" || p.Location != ""
}
