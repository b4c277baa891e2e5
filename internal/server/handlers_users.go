package server

import (
	"encoding/json"
	"net/http"

	"github.com/jordan/job-tracker/internal/server/middleware"
)

// UpdateDailyGoalRequest changes the user's streak goal
type UpdateDailyGoalRequest struct {
	DailyGoal int `json:"daily_goal"`
}

// handleMe returns the authenticated user's profile
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.userService.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleUpdateDailyGoal changes the authenticated user's daily goal
func (s *Server) handleUpdateDailyGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateDailyGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.userService.SetDailyGoal(r.Context(), userID, req.DailyGoal); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"daily_goal": req.DailyGoal})
}

// handleUpdatePassword changes the authenticated user's password
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}
