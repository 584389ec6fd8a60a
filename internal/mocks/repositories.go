package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.PostRepository    = (*MockPostRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.SessionRepository = (*MockSessionRepository)(nil)
)

// NewRepositories wires a full set of in-memory repositories sharing one user table
func NewRepositories() *repository.Repositories {
	users := NewMockUserRepository()
	return &repository.Repositories{
		User:    users,
		Post:    NewMockPostRepository(users),
		Comment: NewMockCommentRepository(users),
		Session: NewMockSessionRepository(),
		Ping:    func(ctx context.Context) error { return nil },
	}
}

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	InsertError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	if _, exists := m.EmailToUser[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	stored := *user
	m.Users[user.ID] = &stored
	m.EmailToUser[user.Email] = &stored
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.Users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.EmailToUser[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	stored, ok := m.Users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = user.Name
	stored.Bio = user.Bio
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

func (m *MockUserRepository) summary(id string) *models.OwnerSummary {
	if u, ok := m.Users[id]; ok {
		return u.Summary()
	}
	return nil
}

// MockPostRepository is an in-memory implementation of PostRepository
type MockPostRepository struct {
	Posts       map[string]*models.Post
	InsertError error
	ListError   error
	users       *MockUserRepository
	seq         map[string]int
}

func NewMockPostRepository(users *MockUserRepository) *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
		users: users,
		seq:   make(map[string]int),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	stored := *post
	stored.Author = nil
	stored.Categories = append([]string{}, post.Categories...)
	stored.Tags = append([]string{}, post.Tags...)
	m.Posts[post.ID] = &stored
	m.seq[post.ID] = len(m.seq)
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	return m.populated(p), nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	stored, ok := m.Posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.Categories = append([]string{}, post.Categories...)
	stored.Tags = append([]string{}, post.Tags...)
	stored.IsPublished = post.IsPublished
	stored.UpdatedAt = post.UpdatedAt
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

func (m *MockPostRepository) List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, int, error) {
	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	var matched []*models.Post
	for _, p := range m.Posts {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		if filter.AuthorID != "" && p.AuthorID != filter.AuthorID {
			continue
		}
		if filter.Category != "" && !contains(p.Categories, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchesText(filter.Search, p.Title, p.Content) {
			continue
		}
		matched = append(matched, p)
	}

	sortNewest(matched, func(p *models.Post) (time.Time, int) { return p.CreatedAt, m.seq[p.ID] })

	result := []*models.Post{}
	for _, i := range paginate(len(matched), page) {
		result = append(result, m.populated(matched[i]))
	}
	return result, len(matched), nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

func (m *MockPostRepository) populated(p *models.Post) *models.Post {
	copied := *p
	copied.Categories = append([]string{}, p.Categories...)
	copied.Tags = append([]string{}, p.Tags...)
	copied.Author = m.users.summary(p.AuthorID)
	return &copied
}

// MockCommentRepository is an in-memory implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	InsertError error
	users       *MockUserRepository
	seq         map[string]int
}

func NewMockCommentRepository(users *MockUserRepository) *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
		users:    users,
		seq:      make(map[string]int),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	stored := *comment
	stored.Author = nil
	m.Comments[comment.ID] = &stored
	m.seq[comment.ID] = len(m.seq)
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	return m.populated(c), nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	stored, ok := m.Comments[comment.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Content = comment.Content
	stored.UpdatedAt = comment.UpdatedAt
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) List(ctx context.Context, filter models.CommentFilter, page models.Page) ([]*models.Comment, int, error) {
	var matched []*models.Comment
	for _, c := range m.Comments {
		if filter.PostID != "" && c.PostID != filter.PostID {
			continue
		}
		if filter.ApprovedOnly && !c.IsApproved {
			continue
		}
		matched = append(matched, c)
	}

	sortNewest(matched, func(c *models.Comment) (time.Time, int) { return c.CreatedAt, m.seq[c.ID] })

	result := []*models.Comment{}
	for _, i := range paginate(len(matched), page) {
		result = append(result, m.populated(matched[i]))
	}
	return result, len(matched), nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

func (m *MockCommentRepository) populated(c *models.Comment) *models.Comment {
	copied := *c
	copied.Author = m.users.summary(c.AuthorID)
	return &copied
}

// MockSessionRepository is an in-memory implementation of SessionRepository
type MockSessionRepository struct {
	Sessions map[string]*models.Session
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{Sessions: make(map[string]*models.Session)}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	stored := *session
	m.Sessions[session.Token] = &stored
	return nil
}

func (m *MockSessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	if s, ok := m.Sessions[token]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	delete(m.Sessions, token)
	return nil
}

// Helpers

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// matchesText reports whether any search term appears in one of the fields
func matchesText(search string, fields ...string) bool {
	haystack := strings.ToLower(strings.Join(fields, " "))
	for _, term := range strings.Fields(strings.ToLower(search)) {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func sortNewest[T any](items []T, key func(T) (time.Time, int)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, si := key(items[i])
		tj, sj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return si > sj
	})
}

// paginate returns the indexes of the records on page
func paginate(total int, page models.Page) []int {
	start := page.Offset()
	if start < 0 || start >= total || page.Limit <= 0 {
		return nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return idx
}
