package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/config"
	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/types"
)

// DBClient is the subset of *db.DB the user service needs.
type DBClient interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email string, role types.Role, skills []string, passwordHash string) (uuid.UUID, error)
	UpdateUserSkills(ctx context.Context, userID uuid.UUID, skills []string) error
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService provides business logic for accounts and profiles
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new student or employer with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// A concurrent registration can win between the check and the insert
	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, req.Role, req.Skills, passwordHash)
	if errors.Is(err, db.ErrEmailTaken) {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return dbUser.APIUser(), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same error for unknown email, wrong password and unset password
	if dbUser == nil || !dbUser.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return dbUser.APIUser(), nil
}

// GetProfile returns the user's account data
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return dbUser.APIUser(), nil
}

// UpdateSkills replaces the user's skills and returns the updated user
func (s *UserService) UpdateSkills(ctx context.Context, userID uuid.UUID, skills []string) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if skills == nil {
		skills = []string{}
	}
	if err := s.db.UpdateUserSkills(ctx, userID, skills); err != nil {
		return nil, fmt.Errorf("failed to update skills: %w", err)
	}

	return s.GetProfile(ctx, userID)
}
