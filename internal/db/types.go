package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a tracker account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	DailyGoal    int       `json:"daily_goal" db:"daily_goal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Company represents an employer referenced by one or more applications
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	CompanySize string    `json:"company_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Valid application statuses. Status transitions are unrestricted; the
// vocabulary is fixed.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// ValidStatus reports whether s is one of the recognized application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application represents one tracked job application
type Application struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	CompanyID       *uuid.UUID  `json:"company_id,omitempty"`
	Title           string      `json:"title"`
	CompanyName     string      `json:"company_name"`
	Location        string      `json:"location,omitempty"`
	LocationType    string      `json:"location_type,omitempty"`
	Description     string      `json:"description,omitempty"`
	SalaryText      string      `json:"salary_text,omitempty"`
	JobType         string      `json:"job_type,omitempty"`
	ExperienceLevel string      `json:"experience_level,omitempty"`
	Skills          StringArray `json:"skills"` // JSONB array
	SourceURL       string      `json:"source_url"`
	SourcePlatform  string      `json:"source_platform"`
	Status          string      `json:"status"`
	AppliedAt       time.Time   `json:"applied_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Achievement represents an unlocked achievement row
type Achievement struct {
	UserID     uuid.UUID `json:"user_id"`
	Key        string    `json:"key"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// DailyCount is the number of applications submitted on one calendar day
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	switch source := src.(type) {
	case []byte:
		return json.Unmarshal(source, a)
	case string:
		return json.Unmarshal([]byte(source), a)
	}
	return errors.New("unsupported source type for StringArray")
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
