package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/recommend"
	"github.com/jonathan/chalkbox/internal/server/middleware"
	"github.com/jonathan/chalkbox/internal/types"
)

// ---------------------------------------------------------------------
// Job Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	employerID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreateJobRequest
	if err := decodeJSON(w, r, s.validator, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	job, err := s.store.CreateJob(r.Context(), db.JobInput{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleApplyToJob(w http.ResponseWriter, r *http.Request) {
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

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if job == nil {
		s.serviceError(w, r, fmt.Errorf("job %s: %w", jobID, recommend.ErrNotFound))
		return
	}
	if job.Status != db.JobStatusOpen {
		s.serviceError(w, r, &ErrJobClosed{JobID: jobID})
		return
	}

	if err := s.store.ApplyToJob(r.Context(), jobID, userID); err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{
		"job_id":  jobID,
		"user_id": userID,
	})
}

// ---------------------------------------------------------------------
// Workshop Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateWorkshop(w http.ResponseWriter, r *http.Request) {
	hostID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreateWorkshopRequest
	if err := decodeJSON(w, r, s.validator, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	workshop, err := s.store.CreateWorkshop(r.Context(), db.WorkshopInput{
		HostID:       hostID,
		Title:        req.Title,
		Description:  req.Description,
		SkillsTaught: req.SkillsTaught,
		StartsAt:     req.StartsAt,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, workshop)
}

func (s *Server) handleAttendWorkshop(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	workshopID, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	workshop, err := s.store.GetWorkshop(r.Context(), workshopID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if workshop == nil {
		s.serviceError(w, r, fmt.Errorf("workshop %s: %w", workshopID, recommend.ErrNotFound))
		return
	}

	if err := s.store.AttendWorkshop(r.Context(), workshopID, userID); err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{
		"workshop_id": workshopID,
		"user_id":     userID,
	})
}
