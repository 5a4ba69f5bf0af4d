package server

import (
	"net/http"

	"github.com/jonathan/chalkbox/internal/types"
)

// handleMatch scores an ad hoc profile against a target skill list.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeJSON(w, r, s.validator, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	breakdown, err := s.recommender.Match(req.ProfileSkills, req.TargetSkills, req.BadgeList(), req.HasPriorInteraction)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, breakdown)
}

// handleTaxonomy lists the canonical skills the scorer recognizes.
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	taxonomy := s.recommender.Taxonomy()
	jsonResponse(w, http.StatusOK, map[string]any{
		"match_mode": taxonomy.Mode().String(),
		"skills":     taxonomy.Entries(),
	})
}
