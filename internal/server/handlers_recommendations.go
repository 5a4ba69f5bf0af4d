package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/recommend"
	"github.com/jonathan/chalkbox/internal/server/middleware"
	"github.com/jonathan/chalkbox/internal/types"
)

// handleRecommendJobs ranks open jobs for the authenticated user.
func (s *Server) handleRecommendJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	recs, err := s.recommender.RecommendJobs(r.Context(), userID, limit)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if recs == nil {
		recs = []types.JobRecommendation{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleRecommendWorkshops ranks workshops for the authenticated user.
func (s *Server) handleRecommendWorkshops(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	recs, err := s.recommender.RecommendWorkshops(r.Context(), userID, limit)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if recs == nil {
		recs = []types.WorkshopRecommendation{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleJobCandidates ranks students against one of the caller's jobs.
func (s *Server) handleJobCandidates(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	jobID, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	if err := s.requireJobOwner(r, jobID, userID); err != nil {
		s.serviceError(w, r, err)
		return
	}

	recs, err := s.recommender.RankCandidates(r.Context(), jobID, limit)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if recs == nil {
		recs = []types.CandidateRecommendation{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     jobID,
		"candidates": recs,
		"count":      len(recs),
	})
}

func (s *Server) requireJobOwner(r *http.Request, jobID, userID uuid.UUID) error {
	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job %s: %w", jobID, recommend.ErrNotFound)
	}
	if job.EmployerID != userID {
		return &ErrForbidden{Reason: "job belongs to another employer"}
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}
