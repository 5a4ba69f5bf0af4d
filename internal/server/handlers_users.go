package server

import (
	"net/http"

	"github.com/jonathan/chalkbox/internal/server/middleware"
	"github.com/jonathan/chalkbox/internal/types"
)

// handleGetMe returns the authenticated user's account.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.userService.GetProfile(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// handleUpdateSkills replaces the authenticated user's skill list.
func (s *Server) handleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.UpdateSkillsRequest
	if err := decodeJSON(w, r, s.validator, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	user, err := s.userService.UpdateSkills(r.Context(), userID, req.Skills)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, user)
}
