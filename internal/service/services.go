package service

import (
	"context"
	"time"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for accounts and bearer sessions
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, req *models.UpdateUserRequest) (*models.User, error)
}

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, requester *models.User, req *models.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, *models.Pagination, error)
	ListByUser(ctx context.Context, userID string, page models.Page) ([]*models.Post, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, requesterID, id string, req *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, requesterID, id string) error
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(ctx context.Context, requester *models.User, req *models.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, page models.Page) ([]*models.Comment, *models.Pagination, error)
	Update(ctx context.Context, requesterID, id string, req *models.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, requesterID, id string) error
}

// HealthService reports store reachability and record counts
type HealthService interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Health  HealthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos, cfg.Auth, log),
		Post:    newPostService(repos, log),
		Comment: newCommentService(repos, log),
		Health:  newHealthService(repos),
	}
}

// clock is swapped in tests that need deterministic timestamps
var clock = func() time.Time { return time.Now().UTC() }
