package notebook

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StorageKey is the key under which the whole post list is kept
const StorageKey = "blogPosts"

// Post is a notebook entry
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// PostFromForm builds a post from trimmed form values
func PostFromForm(form validation.NoteForm) Post {
	return Post{
		Title:   strings.TrimSpace(form.Title),
		Author:  strings.TrimSpace(form.Author),
		Content: strings.TrimSpace(form.Content),
	}
}

// Store keeps the post list as one JSON blob in a Storage. Every operation
// reads the whole list and writes it back; there is no locking across
// processes, so the last write wins.
type Store struct {
	storage Storage
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how ids are generated for new posts
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a Store over storage
func NewStore(storage Storage, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		log:     log.With().Str("component", "notebook").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all posts in insertion order. Unreadable data yields an
// empty list.
func (s *Store) List() []Post {
	raw, ok, err := s.storage.GetItem(StorageKey)
	if err != nil {
		s.log.Error().Err(err).Msg("Error reading posts from storage")
		return []Post{}
	}
	if !ok || raw == "" {
		return []Post{}
	}

	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		s.log.Error().Err(err).Msg("Error parsing stored posts")
		return []Post{}
	}
	if posts == nil {
		return []Post{}
	}
	return posts
}

// Newest returns a copy of posts ordered by creation time, newest first
func Newest(posts []Post) []Post {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Get returns the post with id
func (s *Store) Get(id string) (Post, bool) {
	for _, p := range s.List() {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Create appends post, filling in the id and creation time when absent.
// It fails when the id is already taken or the list cannot be written.
func (s *Store) Create(post Post) (Post, bool) {
	posts := s.List()
	now := s.now()

	if post.ID == "" {
		post.ID = s.newID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.LastModified = now

	for _, p := range posts {
		if p.ID == post.ID {
			s.log.Error().Str("id", post.ID).Msg("Post id already exists")
			return Post{}, false
		}
	}

	if !s.save(append(posts, post)) {
		return Post{}, false
	}
	return post, true
}

// Update merges the non-empty fields of post into the stored post with the
// same id and refreshes its modification time
func (s *Store) Update(post Post) bool {
	posts := s.List()
	for i := range posts {
		if posts[i].ID != post.ID {
			continue
		}

		existing := &posts[i]
		if post.Title != "" {
			existing.Title = post.Title
		}
		if post.Author != "" {
			existing.Author = post.Author
		}
		if post.Content != "" {
			existing.Content = post.Content
		}
		if !post.CreatedAt.IsZero() {
			existing.CreatedAt = post.CreatedAt
		}
		existing.LastModified = s.now()

		return s.save(posts)
	}

	s.log.Error().Str("id", post.ID).Msg("Post not found for update")
	return false
}

// Delete removes the post with id
func (s *Store) Delete(id string) bool {
	posts := s.List()
	kept := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(posts) {
		s.log.Error().Str("id", id).Msg("Post not found for deletion")
		return false
	}
	return s.save(kept)
}

// Clear removes every post
func (s *Store) Clear() bool {
	if err := s.storage.RemoveItem(StorageKey); err != nil {
		s.log.Error().Err(err).Msg("Error clearing posts")
		return false
	}
	return true
}

// SeedIfEmpty writes the sample posts when the store holds none and returns
// the posts present afterwards
func (s *Store) SeedIfEmpty() []Post {
	if posts := s.List(); len(posts) > 0 {
		return posts
	}

	samples := SamplePosts(s.now())
	if !s.save(samples) {
		return s.List()
	}
	return samples
}

// SamplePosts returns the two posts a fresh notebook starts with
func SamplePosts(now time.Time) []Post {
	yesterday := now.Add(-24 * time.Hour)
	return []Post{
		{
			ID:           "1",
			Title:        "Welcome to Our Blog",
			Author:       "Blog Admin",
			Content:      "This is your first blog post! You can edit or delete this post, or create new ones using the navigation above.",
			CreatedAt:    now,
			LastModified: now,
		},
		{
			ID:           "2",
			Title:        "Getting Started with React",
			Author:       "React Developer",
			Content:      "React is a powerful JavaScript library for building user interfaces. In this post, we'll explore the basics of React components, state management, and props.",
			CreatedAt:    yesterday,
			LastModified: yesterday,
		},
	}
}

func (s *Store) save(posts []Post) bool {
	raw, err := json.Marshal(posts)
	if err != nil {
		s.log.Error().Err(err).Msg("Error encoding posts")
		return false
	}
	if err := s.storage.SetItem(StorageKey, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("Error saving posts to storage")
		return false
	}
	return true
}
