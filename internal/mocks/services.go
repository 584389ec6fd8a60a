package mocks

import (
	"context"

	"github.com/blog-api/internal/service"
)

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	PingFunc   func(ctx context.Context) error
	CountsFunc func(ctx context.Context) (map[string]int, error)
	Pings      int
}

// Verify interface compliance
var _ service.HealthService = (*MockHealthService)(nil)

func NewMockHealthService() *MockHealthService {
	return &MockHealthService{}
}

func (m *MockHealthService) Ping(ctx context.Context) error {
	m.Pings++
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockHealthService) Counts(ctx context.Context) (map[string]int, error) {
	if m.CountsFunc != nil {
		return m.CountsFunc(ctx)
	}
	return map[string]int{"users": 0, "posts": 0, "comments": 0}, nil
}
