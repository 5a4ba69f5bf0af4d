package types

import "github.com/go-playground/validator/v10"

// MatchRequest is an ad hoc scoring request.
type MatchRequest struct {
	ProfileSkills       []string    `json:"profile_skills" validate:"max=200,dive,max=100"`
	TargetSkills        []string    `json:"target_skills" validate:"required,min=1,max=200,dive,max=100"`
	Badges              []BadgeTier `json:"badges" validate:"max=10"`
	HasPriorInteraction bool        `json:"has_prior_interaction"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BadgeList converts the requested tiers into badge assignments.
func (r *MatchRequest) BadgeList() []Badge {
	badges := make([]Badge, 0, len(r.Badges))
	for _, tier := range r.Badges {
		badges = append(badges, Badge{Tier: tier})
	}
	return badges
}

// UpdateSkillsRequest replaces the authenticated user's skill list.
type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"max=200,dive,required,max=100"`
}

// Validate validates the UpdateSkillsRequest using the validator.
func (r *UpdateSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
