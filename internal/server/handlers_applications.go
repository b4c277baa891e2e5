package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jordan/job-tracker/internal/db"
	"github.com/jordan/job-tracker/internal/server/middleware"
	"github.com/jordan/job-tracker/internal/types"
)

// TrackPostingResponse is returned when an extracted posting is accepted.
// NewAchievements carries any badges the submission unlocked so the client
// can surface them immediately.
type TrackPostingResponse struct {
	ApplicationID   string   `json:"application_id"`
	Status          string   `json:"status"`
	NewAchievements []string `json:"new_achievements,omitempty"`
}

// ListApplicationsResponse represents the response for listing applications
type ListApplicationsResponse struct {
	Applications []db.Application `json:"applications"`
	Count        int              `json:"count"`
}

// UpdateStatusRequest changes an application's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// handleTrackPosting records an extracted job posting as a new application.
// This is the endpoint the extraction CLI submits to.
func (s *Server) handleTrackPosting(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var posting types.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if posting.SourceURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "source_url is required")
		return
	}

	ctx := r.Context()

	app := &db.Application{
		UserID:          userID,
		Title:           posting.Title,
		CompanyName:     posting.CompanyName,
		Location:        posting.Location,
		LocationType:    string(posting.LocationType),
		Description:     posting.Description,
		SalaryText:      posting.SalaryText,
		JobType:         string(posting.JobType),
		ExperienceLevel: string(posting.ExperienceLevel),
		Skills:          db.StringArray(posting.Skills),
		SourceURL:       posting.SourceURL,
		SourcePlatform:  string(posting.SourcePlatform),
		Status:          db.StatusApplied,
	}
	if app.SourcePlatform == "" {
		app.SourcePlatform = string(types.PlatformOther)
	}

	// Link the employer record when a company name was extracted.
	if posting.CompanyName != "" {
		companyID, err := s.db.GetOrCreateCompany(ctx, posting.CompanyName, posting.CompanyURL, posting.Industry, posting.CompanySize)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		app.CompanyID = &companyID
	}

	appID, err := s.db.CreateApplication(ctx, app)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateApplication) {
			s.errorResponse(w, http.StatusConflict, "Application already tracked for this URL")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Achievement checks are best-effort: a failure never rejects the
	// submission itself.
	var newKeys []string
	if unlocked, err := s.achievements.CheckAndUnlock(ctx, userID); err == nil {
		for _, def := range unlocked {
			newKeys = append(newKeys, def.Key())
		}
	}

	s.jsonResponse(w, http.StatusCreated, TrackPostingResponse{
		ApplicationID:   appID.String(),
		Status:          db.StatusApplied,
		NewAchievements: newKeys,
	})
}

// handleListApplications lists the user's applications with optional filters
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.ApplicationFilters{
		Status:  r.URL.Query().Get("status"),
		Company: r.URL.Query().Get("company"),
		Limit:   parseQueryInt(r, "limit", 50, 200),
	}
	if filters.Status != "" && !db.ValidStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	apps, err := s.db.ListApplications(r.Context(), userID, filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListApplicationsResponse{
		Applications: apps,
		Count:        len(apps),
	})
}

// handleGetApplication retrieves a single application by ID
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := s.db.GetApplication(r.Context(), userID, appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateStatus changes an application's status
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !db.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status: "+req.Status)
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), userID, appID, req.Status); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	// Interview and offer statuses can cross achievement thresholds.
	var newKeys []string
	if unlocked, err := s.achievements.CheckAndUnlock(r.Context(), userID); err == nil {
		for _, def := range unlocked {
			newKeys = append(newKeys, def.Key())
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":           req.Status,
		"new_achievements": newKeys,
	})
}

// handleDeleteApplication removes an application
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if err := s.db.DeleteApplication(r.Context(), userID, appID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListCompanies lists known companies
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 100, 500)

	companies, err := s.db.ListCompanies(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}

// parseQueryInt reads a non-negative integer query parameter with a default
// and an optional maximum (0 means no cap).
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
