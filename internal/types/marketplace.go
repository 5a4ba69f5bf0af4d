package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Role distinguishes students from employers.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

// Profile is the skill profile of a user, as consumed by the scorer.
type Profile struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	Skills []string  `json:"skills"`
	Badges []Badge   `json:"badges"`
}

// Job is an open job posting.
type Job struct {
	ID             uuid.UUID `json:"id"`
	EmployerID     uuid.UUID `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	RequiredSkills []string  `json:"required_skills"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Workshop is a hosted workshop.
type Workshop struct {
	ID           uuid.UUID  `json:"id"`
	HostID       uuid.UUID  `json:"host_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	SkillsTaught []string   `json:"skills_taught"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// JobRecommendation is a job with its similarity result attached.
type JobRecommendation struct {
	Job        Job               `json:"job"`
	Similarity *SimilarityResult `json:"similarity,omitempty"`
}

// WorkshopRecommendation is a workshop with its similarity result attached.
type WorkshopRecommendation struct {
	Workshop   Workshop          `json:"workshop"`
	Similarity *SimilarityResult `json:"similarity,omitempty"`
}

// CandidateRecommendation is a student ranked against a job.
type CandidateRecommendation struct {
	Candidate  Profile           `json:"candidate"`
	Similarity *SimilarityResult `json:"similarity,omitempty"`
}

// CreateJobRequest is an employer's request to post a job.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"max=5000"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1,max=50,dive,required,max=100"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	return validator.New().Struct(r)
}

// CreateWorkshopRequest is a host's request to schedule a workshop.
type CreateWorkshopRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=5000"`
	SkillsTaught []string   `json:"skills_taught" validate:"required,min=1,max=50,dive,required,max=100"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
}

// Validate validates the CreateWorkshopRequest using the validator.
func (r *CreateWorkshopRequest) Validate() error {
	return validator.New().Struct(r)
}
