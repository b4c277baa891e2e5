package server

import (
	"net/http"

	"github.com/jordan/job-tracker/internal/server/middleware"
)

// handleStreakStats returns the user's streak summary
func (s *Server) handleStreakStats(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := s.streaks.Stats(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute streaks: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleStreakCalendar returns per-day activity for the heatmap view
func (s *Server) handleStreakCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	days := parseQueryInt(r, "days", 90, 365)
	calendar, err := s.streaks.Calendar(r.Context(), userID, days)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build calendar: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"days":     days,
		"calendar": calendar,
	})
}

// handleMotivation returns a short progress message for the dashboard
func (s *Server) handleMotivation(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	msg, err := s.streaks.Motivation(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute progress: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": msg})
}

// handleListAchievements returns the achievement table with unlock state
func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	statuses, err := s.achievements.List(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list achievements: "+err.Error())
		return
	}

	unlocked := 0
	for _, st := range statuses {
		if st.Unlocked {
			unlocked++
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"achievements":   statuses,
		"total":          len(statuses),
		"total_unlocked": unlocked,
	})
}
