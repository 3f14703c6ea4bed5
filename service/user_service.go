package service

import (
	"context"
	"errors"
	"time"

	"lexflow-backend/models"
	"lexflow-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const sessionTTL = 24 * time.Hour

// UserService handles authentication and user management
type UserService struct {
	userRepo *repository.UserRepository
}

// UserServiceOption is a functional option for UserService
type UserServiceOption func(*UserService)

// WithUserRepository sets the user repository
func WithUserRepository(repo *repository.UserRepository) UserServiceOption {
	return func(s *UserService) {
		s.userRepo = repo
	}
}

// NewUserService creates a new user service
func NewUserService(opts ...UserServiceOption) *UserService {
	s := &UserService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest represents a request to create a user
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
	FirmName *string
}

// RegisterResult represents the result of creating a user
type RegisterResult struct {
	User *models.User
}

// Register creates a user with a bcrypt-hashed password
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleLawyer
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		FirmName:     req.FirmName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResult{User: user}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult carries the issued session and its user
type LoginResult struct {
	User    *models.User
	Session *models.Session
}

// Login verifies credentials and issues an opaque session token
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Token:     uuid.NewString() + uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.userRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Session: session}, nil
}

// Logout revokes a session token
func (s *UserService) Logout(ctx context.Context, token string) error {
	if s.userRepo == nil {
		return errors.New("user repository not set")
	}
	return s.userRepo.DeleteSession(ctx, token)
}

// Authenticate resolves a bearer token to its user
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}
	return s.userRepo.List(ctx)
}
