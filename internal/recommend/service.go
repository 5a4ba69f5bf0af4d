// Package recommend ranks jobs, workshops and candidates for marketplace users
// by skill similarity.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/ranking"
	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/jonathan/chalkbox/internal/types"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when the requested user or job does not exist.
var ErrNotFound = errors.New("not found")

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 20


// Store is the persistence the service reads from. *db.DB implements it.
type Store interface {
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	ListUserBadges(ctx context.Context, userID uuid.UUID) ([]types.Badge, error)
	ListBadgesForUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]types.Badge, error)
	ListStudents(ctx context.Context) ([]db.User, error)
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	ListOpenJobs(ctx context.Context) ([]types.Job, error)
	ListWorkshops(ctx context.Context) ([]types.Workshop, error)
	AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AttendedHostIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListJobApplicants(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
	HostAttendeeIDs(ctx context.Context, hostID uuid.UUID) ([]uuid.UUID, error)
}

// Service produces ranked recommendations.
type Service struct {
	store        Store
	scorer       *ranking.Scorer
	logger       *slog.Logger
	defaultLimit int
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLimit sets the page size used when callers pass limit <= 0.
func WithDefaultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// NewService creates a recommendation service. A nil scorer uses the default taxonomy.
func NewService(store Store, scorer *ranking.Scorer, opts ...Option) *Service {
	if scorer == nil {
		scorer = ranking.NewScorer(nil)
	}
	s := &Service{
		store:        store,
		scorer:       scorer,
		logger:       slog.Default(),
		defaultLimit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the taxonomy the service scores against.
func (s *Service) Taxonomy() *skills.Taxonomy {
	return s.scorer.Taxonomy()
}

func (s *Service) limit(n int) int {
	if n <= 0 {
		return s.defaultLimit
	}
	return n
}

// viewer is a user's profile plus the interaction history used for boosts.
type viewer struct {
	profile      types.Profile
	appliedJobs  map[uuid.UUID]bool
	visitedHosts map[uuid.UUID]bool
}

// loadViewer fetches the user, their badges and their interaction history concurrently.
func (s *Service) loadViewer(ctx context.Context, userID uuid.UUID) (*viewer, error) {
	var (
		user     *db.User
		badges   []types.Badge
		applied  []uuid.UUID
		attended []uuid.UUID
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.store.GetUser(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		badges, err = s.store.ListUserBadges(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		applied, err = s.store.AppliedJobIDs(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		attended, err = s.store.AttendedHostIDs(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	return &viewer{
		profile:      user.Profile(badges),
		appliedJobs:  idSet(applied),
		visitedHosts: idSet(attended),
	}, nil
}

// RecommendJobs ranks open jobs for a user. A job counts as a prior
// interaction if the user applied to it or attended a workshop run by its employer.
func (s *Service) RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]types.JobRecommendation, error) {
	v, err := s.loadViewer(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.store.ListOpenJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	recs := make([]types.JobRecommendation, 0, len(jobs))
	for _, job := range jobs {
		prior := v.appliedJobs[job.ID] || v.visitedHosts[job.EmployerID]
		recs = append(recs, types.JobRecommendation{
			Job:        job,
			Similarity: s.score(v.profile, job.RequiredSkills, prior, "job", job.ID),
		})
	}

	ranked := ranking.Rank(recs, func(r types.JobRecommendation) (float64, bool) {
		return ranking.ResultScore(r.Similarity)
	})
	s.logger.DebugContext(ctx, "ranked job recommendations", "user_id", userID, "jobs", len(jobs))
	return ranking.TopN(ranked, s.limit(limit)), nil
}

// RecommendWorkshops ranks workshops for a user. A workshop counts as a prior
// interaction if the user attended any workshop run by the same host.
func (s *Service) RecommendWorkshops(ctx context.Context, userID uuid.UUID, limit int) ([]types.WorkshopRecommendation, error) {
	v, err := s.loadViewer(ctx, userID)
	if err != nil {
		return nil, err
	}

	workshops, err := s.store.ListWorkshops(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	recs := make([]types.WorkshopRecommendation, 0, len(workshops))
	for _, w := range workshops {
		recs = append(recs, types.WorkshopRecommendation{
			Workshop:   w,
			Similarity: s.score(v.profile, w.SkillsTaught, v.visitedHosts[w.HostID], "workshop", w.ID),
		})
	}

	ranked := ranking.Rank(recs, func(r types.WorkshopRecommendation) (float64, bool) {
		return ranking.ResultScore(r.Similarity)
	})
	s.logger.DebugContext(ctx, "ranked workshop recommendations", "user_id", userID, "workshops", len(workshops))
	return ranking.TopN(ranked, s.limit(limit)), nil
}

// RankCandidates ranks every student against a job. A student counts as a
// prior interaction if they applied to the job or attended one of the
// employer's workshops. Each candidate's own badges drive their boost.
func (s *Service) RankCandidates(ctx context.Context, jobID uuid.UUID, limit int) ([]types.CandidateRecommendation, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}

	var (
		students   []db.User
		applicants []uuid.UUID
		attendees  []uuid.UUID
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = s.store.ListStudents(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		applicants, err = s.store.ListJobApplicants(gCtx, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		attendees, err = s.store.HostAttendeeIDs(gCtx, job.EmployerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load candidates for job %s: %w", jobID, err)
	}

	ids := make([]uuid.UUID, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	badges, err := s.store.ListBadgesForUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate badges: %w", err)
	}

	applied, attended := idSet(applicants), idSet(attendees)
	recs := make([]types.CandidateRecommendation, 0, len(students))
	for _, st := range students {
		profile := st.Profile(badges[st.ID])
		prior := applied[st.ID] || attended[st.ID]
		recs = append(recs, types.CandidateRecommendation{
			Candidate:  profile,
			Similarity: s.score(profile, job.RequiredSkills, prior, "candidate", st.ID),
		})
	}

	ranked := ranking.Rank(recs, func(r types.CandidateRecommendation) (float64, bool) {
		return ranking.ResultScore(r.Similarity)
	})
	s.logger.DebugContext(ctx, "ranked candidates", "job_id", jobID, "candidates", len(students))
	return ranking.TopN(ranked, s.limit(limit)), nil
}

// Match scores an ad hoc profile against a target skill list.
func (s *Service) Match(profileSkills, targetSkills []string, badges []types.Badge, hasPriorInteraction bool) (types.MatchBreakdown, error) {
	return s.scorer.Explain(profileSkills, targetSkills, badges, hasPriorInteraction)
}

// score returns nil when scoring fails; the item then ranks as unscored.
func (s *Service) score(profile types.Profile, target []string, prior bool, kind string, id uuid.UUID) *types.SimilarityResult {
	result, err := s.scorer.Score(profile.Skills, target, profile.Badges, prior)
	if err != nil {
		s.logger.Warn("failed to score item", "kind", kind, "id", id, "error", err)
		return nil
	}
	return &result
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
