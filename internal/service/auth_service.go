package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Token is not valid"
	msgUserNotFound       = "User not found"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      config.AuthConfig
	log      zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(repos *repository.Repositories, cfg config.AuthConfig, log zerolog.Logger) *authService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		users:    repos.User,
		sessions: repos.Session,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a user and opens a session for it
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := validation.ValidateRegistration(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := clock()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and opens a new session
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperror.BadRequest("Please provide email and password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil || !checkPassword(user.PasswordHash, req.Password) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Logout deletes the session behind token
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its user
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("looking up session: %w", err)
	}
	if session == nil {
		return nil, apperror.Unauthorized(msgInvalidToken)
	}
	if session.Expired(clock()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("Failed to delete expired session")
		}
		return nil, apperror.Unauthorized(msgInvalidToken)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("looking up session user: %w", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized(msgInvalidToken)
	}
	return user, nil
}

// GetUser returns the public profile of a user
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	id, err := validation.CanonicalID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(msgUserNotFound)
	}
	return user, nil
}

// UpdateProfile applies the present, non-empty fields of req to user
func (s *authService) UpdateProfile(ctx context.Context, user *models.User, req *models.UpdateUserRequest) (*models.User, error) {
	updated := *user
	if req.Name != nil && *req.Name != "" {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}

	if errs := validation.ValidateUser(&updated); len(errs) > 0 {
		return nil, errs
	}

	updated.UpdatedAt = clock()
	if err := s.users.Update(ctx, &updated); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

func (s *authService) openSession(ctx context.Context, userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	now := clock()
	session := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}
	return token, nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
