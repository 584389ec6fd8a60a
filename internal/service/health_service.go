package service

import (
	"context"
	"fmt"

	"github.com/blog-api/internal/repository"
)

// healthService is the concrete implementation of HealthService
type healthService struct {
	repos *repository.Repositories
}

func newHealthService(repos *repository.Repositories) *healthService {
	return &healthService{repos: repos}
}

// Ping checks that the backing store answers
func (s *healthService) Ping(ctx context.Context) error {
	if s.repos.Ping == nil {
		return nil
	}
	return s.repos.Ping(ctx)
}

// Counts returns the number of stored users, posts and comments
func (s *healthService) Counts(ctx context.Context) (map[string]int, error) {
	counters := []struct {
		name  string
		count func(context.Context) (int, error)
	}{
		{"users", s.repos.User.Count},
		{"posts", s.repos.Post.Count},
		{"comments", s.repos.Comment.Count},
	}

	counts := make(map[string]int, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", c.name, err)
		}
		counts[c.name] = n
	}
	return counts, nil
}
