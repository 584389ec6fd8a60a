package repository

import (
	"context"
	"errors"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
)

var (
	// ErrDuplicateEmail is returned when a user's email is already taken
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrNotFound is returned when a write targets a record that no longer exists
	ErrNotFound = errors.New("record not found")
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int, error)
}

// PostRepository defines the interface for post data operations.
// Reads return posts with Author populated.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, int, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations.
// Reads return comments with Author populated.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter models.CommentFilter, page models.Page) ([]*models.Comment, int, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepository defines the interface for bearer session storage
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Session SessionRepository

	// Ping reports whether the backing store is reachable
	Ping func(ctx context.Context) error
}

// New creates all repositories backed by PostgreSQL
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Post:    NewPostRepo(db),
		Comment: NewCommentRepo(db),
		Session: NewSessionRepo(db),
		Ping:    db.HealthCheck,
	}
}

// NewMongo creates all repositories backed by MongoDB
func NewMongo(m *database.Mongo) *Repositories {
	return &Repositories{
		User:    NewMongoUserRepo(m),
		Post:    NewMongoPostRepo(m),
		Comment: NewMongoCommentRepo(m),
		Session: NewMongoSessionRepo(m),
		Ping:    m.HealthCheck,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
