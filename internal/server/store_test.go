package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/types"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*db.User
	userOrder     []uuid.UUID
	badges        map[uuid.UUID][]types.Badge
	jobs          map[uuid.UUID]*types.Job
	jobOrder      []uuid.UUID
	workshops     map[uuid.UUID]*types.Workshop
	workshopOrder []uuid.UUID
	applications  map[uuid.UUID][]uuid.UUID // job -> users
	attendances   map[uuid.UUID][]uuid.UUID // workshop -> users
	err           error
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:        map[uuid.UUID]*db.User{},
		badges:       map[uuid.UUID][]types.Badge{},
		jobs:         map[uuid.UUID]*types.Job{},
		workshops:    map[uuid.UUID]*types.Workshop{},
		applications: map[uuid.UUID][]uuid.UUID{},
		attendances:  map[uuid.UUID][]uuid.UUID{},
	}
}

func (m *memStore) addUser(role types.Role, skills ...string) uuid.UUID {
	id, _ := m.CreateUser(context.Background(), "user", uuid.NewString()+"@example.com", role, skills, "")
	return id
}

func (m *memStore) addJob(employerID uuid.UUID, title string, skills ...string) uuid.UUID {
	job, _ := m.CreateJob(context.Background(), db.JobInput{EmployerID: employerID, Title: title, RequiredSkills: skills})
	return job.ID
}

func (m *memStore) addWorkshop(hostID uuid.UUID, title string, skills ...string) uuid.UUID {
	ws, _ := m.CreateWorkshop(context.Background(), db.WorkshopInput{HostID: hostID, Title: title, SkillsTaught: skills})
	return ws.ID
}

func (m *memStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateUser(_ context.Context, name, email string, role types.Role, skills []string, passwordHash string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return uuid.Nil, m.err
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return uuid.Nil, fmt.Errorf("failed to create user %s: %w", email, db.ErrEmailTaken)
		}
	}
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{
		ID: id, Name: name, Email: email, Role: role, Skills: skills,
		PasswordHash: passwordHash, PasswordSet: passwordHash != "",
		CreatedAt: now, UpdatedAt: now,
	}
	m.userOrder = append(m.userOrder, id)
	return id, nil
}

func (m *memStore) UpdateUserSkills(_ context.Context, userID uuid.UUID, skills []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.Skills = skills
	return nil
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListUserBadges(_ context.Context, userID uuid.UUID) ([]types.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.badges[userID], nil
}

func (m *memStore) ListBadgesForUsers(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]types.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID][]types.Badge{}
	for _, id := range userIDs {
		if b, ok := m.badges[id]; ok {
			out[id] = b
		}
	}
	return out, nil
}

func (m *memStore) ListStudents(_ context.Context) ([]db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.User
	for _, id := range m.userOrder {
		if u := m.users[id]; u.Role == types.RoleStudent {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memStore) GetJob(_ context.Context, id uuid.UUID) (*types.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	job, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (m *memStore) ListOpenJobs(_ context.Context) ([]types.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []types.Job
	for _, id := range m.jobOrder {
		if job := m.jobs[id]; job.Status == db.JobStatusOpen {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (m *memStore) ListWorkshops(_ context.Context) ([]types.Workshop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Workshop, 0, len(m.workshopOrder))
	for _, id := range m.workshopOrder {
		out = append(out, *m.workshops[id])
	}
	return out, nil
}

func (m *memStore) AppliedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for jobID, users := range m.applications {
		if containsID(users, userID) {
			out = append(out, jobID)
		}
	}
	return out, nil
}

func (m *memStore) AttendedHostIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for workshopID, users := range m.attendances {
		if containsID(users, userID) {
			out = append(out, m.workshops[workshopID].HostID)
		}
	}
	return out, nil
}

func (m *memStore) ListJobApplicants(_ context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.applications[jobID]...), nil
}

func (m *memStore) HostAttendeeIDs(_ context.Context, hostID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for _, workshopID := range m.workshopOrder {
		if m.workshops[workshopID].HostID != hostID {
			continue
		}
		for _, userID := range m.attendances[workshopID] {
			if !containsID(out, userID) {
				out = append(out, userID)
			}
		}
	}
	return out, nil
}

func (m *memStore) GetWorkshop(_ context.Context, id uuid.UUID) (*types.Workshop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workshops[id]
	if !ok {
		return nil, nil
	}
	cp := *ws
	return &cp, nil
}

func (m *memStore) CreateJob(_ context.Context, input db.JobInput) (*types.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	job := &types.Job{
		ID:             uuid.New(),
		EmployerID:     input.EmployerID,
		Title:          input.Title,
		Description:    input.Description,
		RequiredSkills: input.RequiredSkills,
		Status:         db.JobStatusOpen,
		CreatedAt:      time.Now(),
	}
	m.jobs[job.ID] = job
	m.jobOrder = append(m.jobOrder, job.ID)
	cp := *job
	return &cp, nil
}

func (m *memStore) CreateWorkshop(_ context.Context, input db.WorkshopInput) (*types.Workshop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ws := &types.Workshop{
		ID:           uuid.New(),
		HostID:       input.HostID,
		Title:        input.Title,
		Description:  input.Description,
		SkillsTaught: input.SkillsTaught,
		StartsAt:     input.StartsAt,
		CreatedAt:    time.Now(),
	}
	m.workshops[ws.ID] = ws
	m.workshopOrder = append(m.workshopOrder, ws.ID)
	cp := *ws
	return &cp, nil
}

func (m *memStore) ApplyToJob(_ context.Context, jobID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !containsID(m.applications[jobID], userID) {
		m.applications[jobID] = append(m.applications[jobID], userID)
	}
	return nil
}

func (m *memStore) AttendWorkshop(_ context.Context, workshopID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !containsID(m.attendances[workshopID], userID) {
		m.attendances[workshopID] = append(m.attendances[workshopID], userID)
	}
	return nil
}

func (m *memStore) closeJob(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].Status = db.JobStatusClosed
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
