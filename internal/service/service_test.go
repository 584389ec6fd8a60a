package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/mocks"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	repos    *repository.Repositories
	services *service.Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := mocks.NewRepositories()
	cfg := &config.Config{Auth: config.AuthConfig{SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}}
	return &fixture{repos: repos, services: service.NewServices(repos, cfg, zerolog.Nop())}
}

func (f *fixture) register(t *testing.T, name, email string) *models.AuthResponse {
	t.Helper()
	resp, err := f.services.Auth.Register(context.Background(), &models.RegisterRequest{
		Name: name, Email: email, Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return resp
}

func (f *fixture) createPost(t *testing.T, author *models.User, title string) *models.Post {
	t.Helper()
	post, err := f.services.Post.Create(context.Background(), author, &models.CreatePostRequest{
		Title: title, Content: "Body of " + title,
	})
	if err != nil {
		t.Fatalf("Create post failed: %v", err)
	}
	return post
}

func expectStatus(t *testing.T, err error, status int) {
	t.Helper()
	if got := apperror.StatusOf(err); got != status {
		t.Fatalf("expected status %d, got %d (err: %v)", status, got, err)
	}
}

func TestAuthService_RegisterLoginAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg := f.register(t, "Ada", "  Ada@Example.com ")
	if reg.User.Email != "ada@example.com" {
		t.Errorf("email should be normalized, got %q", reg.User.Email)
	}
	if reg.User.PasswordHash == "secret123" {
		t.Error("password must be stored hashed")
	}
	if len(reg.Token) != 64 {
		t.Errorf("expected 64 hex chars token, got %d", len(reg.Token))
	}

	login, err := f.services.Auth.Login(ctx, &models.LoginRequest{Email: "ADA@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Token == reg.Token {
		t.Error("each login should open a new session")
	}

	user, err := f.services.Auth.Authenticate(ctx, login.Token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != reg.User.ID {
		t.Errorf("expected user %s, got %s", reg.User.ID, user.ID)
	}

	if err := f.services.Auth.Logout(ctx, login.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	_, err = f.services.Auth.Authenticate(ctx, login.Token)
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestAuthService_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ada", "ada@example.com")

	_, err := f.services.Auth.Register(ctx, &models.RegisterRequest{Name: "Other", Email: "ada@example.com", Password: "secret123"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	_, err = f.services.Auth.Register(ctx, &models.RegisterRequest{Name: "", Email: "bad", Password: "1"})
	var verrs validation.Errors
	if !errors.As(err, &verrs) || len(verrs) != 3 {
		t.Errorf("expected 3 validation errors, got %v", err)
	}

	_, err = f.services.Auth.Login(ctx, &models.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	expectStatus(t, err, http.StatusUnauthorized)

	_, err = f.services.Auth.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	expectStatus(t, err, http.StatusUnauthorized)

	_, err = f.services.Auth.Authenticate(ctx, "unknown-token")
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestAuthService_ExpiredSessionIsRemoved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg := f.register(t, "Ada", "ada@example.com")

	sessions := f.repos.Session.(*mocks.MockSessionRepository)
	sessions.Sessions[reg.Token].ExpiresAt = time.Now().Add(-time.Minute)

	_, err := f.services.Auth.Authenticate(ctx, reg.Token)
	expectStatus(t, err, http.StatusUnauthorized)
	if _, ok := sessions.Sessions[reg.Token]; ok {
		t.Error("expired session should be deleted on lookup")
	}
}

func TestAuthService_Profile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg := f.register(t, "Ada", "ada@example.com")

	bio := "Writes about engines"
	empty := ""
	updated, err := f.services.Auth.UpdateProfile(ctx, reg.User, &models.UpdateUserRequest{Name: &empty, Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Ada" || updated.Bio != bio {
		t.Errorf("unexpected profile: %+v", updated)
	}

	got, err := f.services.Auth.GetUser(ctx, reg.User.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Bio != bio {
		t.Errorf("expected stored bio %q, got %q", bio, got.Bio)
	}

	_, err = f.services.Auth.GetUser(ctx, "not-a-uuid")
	if err != apperror.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	_, err = f.services.Auth.GetUser(ctx, "550e8400-e29b-41d4-a716-446655440000")
	expectStatus(t, err, http.StatusNotFound)
}

func TestPostService_CreateStampsOwner(t *testing.T) {
	f := newFixture(t)
	author := f.register(t, "Ada", "ada@example.com").User

	post := f.createPost(t, author, "First")
	if post.AuthorID != author.ID {
		t.Errorf("expected author %s, got %s", author.ID, post.AuthorID)
	}
	if post.Author == nil || post.Author.Email != "ada@example.com" {
		t.Errorf("expected populated owner summary, got %+v", post.Author)
	}
	if !post.IsPublished {
		t.Error("new posts should be published")
	}
	if post.Categories == nil || post.Tags == nil {
		t.Error("categories and tags should default to empty lists")
	}

	_, err := f.services.Post.Create(context.Background(), author, &models.CreatePostRequest{Content: "no title"})
	var verrs validation.Errors
	if !errors.As(err, &verrs) || verrs.Field("title") != "Post title is required" {
		t.Errorf("expected title validation error, got %v", err)
	}
}

func TestPostService_OwnershipRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Ada", "ada@example.com").User
	other := f.register(t, "Bob", "bob@example.com").User
	post := f.createPost(t, owner, "Mine")

	title := "Hijacked"
	_, err := f.services.Post.Update(ctx, other.ID, post.ID, &models.UpdatePostRequest{Title: &title})
	expectStatus(t, err, http.StatusForbidden)

	err = f.services.Post.Delete(ctx, other.ID, post.ID)
	expectStatus(t, err, http.StatusForbidden)

	stored, err := f.services.Post.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Title != "Mine" {
		t.Errorf("post should be unchanged, got title %q", stored.Title)
	}

	if err := f.services.Post.Delete(ctx, owner.ID, post.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	_, err = f.services.Post.Get(ctx, post.ID)
	expectStatus(t, err, http.StatusNotFound)
}

func TestPostService_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Ada", "ada@example.com").User
	post := f.createPost(t, owner, "Original")

	empty := ""
	unpublished := false
	tags := []string{"go"}
	updated, err := f.services.Post.Update(ctx, owner.ID, post.ID, &models.UpdatePostRequest{
		Title:       &empty,
		Tags:        &tags,
		IsPublished: &unpublished,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Original" {
		t.Errorf("empty title should leave title unchanged, got %q", updated.Title)
	}
	if updated.Content != post.Content {
		t.Errorf("absent content should be unchanged, got %q", updated.Content)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "go" {
		t.Errorf("expected tags [go], got %v", updated.Tags)
	}
	if updated.IsPublished {
		t.Error("isPublished should be false after update")
	}
	if updated.AuthorID != owner.ID {
		t.Error("owner must not change on update")
	}
}

func TestPostService_GetMalformedID(t *testing.T) {
	f := newFixture(t)
	_, err := f.services.Post.Get(context.Background(), "12345")
	expectStatus(t, err, http.StatusNotFound)
}

func TestPostService_ListPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.register(t, "Ada", "ada@example.com").User
	for i := 0; i < 25; i++ {
		f.createPost(t, author, "Post")
	}

	posts, pagination, err := f.services.Post.List(ctx, models.PostFilter{PublishedOnly: true}, models.Page{Number: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 5 {
		t.Errorf("expected 5 posts on last page, got %d", len(posts))
	}
	want := models.Pagination{Current: 3, Pages: 3, Total: 25, Limit: 10}
	if *pagination != want {
		t.Errorf("expected %+v, got %+v", want, *pagination)
	}

	posts, pagination, err = f.services.Post.List(ctx, models.PostFilter{PublishedOnly: true}, models.Page{Number: 9, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 0 || pagination.Total != 25 {
		t.Errorf("page past the end should be empty with total 25, got %d posts, total %d", len(posts), pagination.Total)
	}
}

func TestPostService_ListByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "ada@example.com").User
	bob := f.register(t, "Bob", "bob@example.com").User
	f.createPost(t, ada, "A1")
	f.createPost(t, ada, "A2")
	f.createPost(t, bob, "B1")

	posts, pagination, err := f.services.Post.ListByUser(ctx, ada.ID, models.Page{Number: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if pagination.Total != 2 {
		t.Errorf("expected 2 posts, got %d", pagination.Total)
	}
	if posts[0].Title != "A2" {
		t.Errorf("expected newest first, got %q", posts[0].Title)
	}

	_, _, err = f.services.Post.ListByUser(ctx, "bogus", models.Page{Number: 1, Limit: 10})
	if err != apperror.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestCommentService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "ada@example.com").User
	bob := f.register(t, "Bob", "bob@example.com").User
	post := f.createPost(t, ada, "Discuss")

	comment, err := f.services.Comment.Create(ctx, bob, &models.CreateCommentRequest{Content: "Nice", PostID: post.ID})
	if err != nil {
		t.Fatalf("Create comment failed: %v", err)
	}
	if comment.PostID != post.ID || comment.AuthorID != bob.ID || !comment.IsApproved {
		t.Errorf("unexpected comment: %+v", comment)
	}

	comments, pagination, err := f.services.Comment.ListByPost(ctx, post.ID, models.Page{Number: 1, Limit: 20})
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 1 || pagination.Total != 1 || comments[0].Author.Name != "Bob" {
		t.Errorf("unexpected listing: %+v %+v", comments, pagination)
	}

	content := "Edited by Ada"
	_, err = f.services.Comment.Update(ctx, ada.ID, comment.ID, &models.UpdateCommentRequest{Content: &content})
	expectStatus(t, err, http.StatusForbidden)

	content = "Edited"
	updated, err := f.services.Comment.Update(ctx, bob.ID, comment.ID, &models.UpdateCommentRequest{Content: &content})
	if err != nil {
		t.Fatalf("Update comment failed: %v", err)
	}
	if updated.Content != "Edited" {
		t.Errorf("expected edited content, got %q", updated.Content)
	}

	err = f.services.Comment.Delete(ctx, ada.ID, comment.ID)
	expectStatus(t, err, http.StatusForbidden)
	if err := f.services.Comment.Delete(ctx, bob.ID, comment.ID); err != nil {
		t.Fatalf("Delete comment failed: %v", err)
	}
	err = f.services.Comment.Delete(ctx, bob.ID, comment.ID)
	expectStatus(t, err, http.StatusNotFound)
}

func TestCommentService_CreateRequiresPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.register(t, "Bob", "bob@example.com").User

	for _, postID := range []string{"", "not-an-id", "550e8400-e29b-41d4-a716-446655440000"} {
		_, err := f.services.Comment.Create(ctx, bob, &models.CreateCommentRequest{Content: "Hi", PostID: postID})
		expectStatus(t, err, http.StatusNotFound)
	}
}

func TestCommentService_LengthLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "ada@example.com").User
	post := f.createPost(t, ada, "Limits")

	long := make([]byte, models.MaxCommentLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err := f.services.Comment.Create(ctx, ada, &models.CreateCommentRequest{Content: string(long), PostID: post.ID})
	var verrs validation.Errors
	if !errors.As(err, &verrs) || verrs.Field("content") != "Comment cannot exceed 500 characters" {
		t.Errorf("expected length validation error, got %v", err)
	}
}

func TestCommentsSurvivePostDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "ada@example.com").User
	post := f.createPost(t, ada, "Ephemeral")

	if _, err := f.services.Comment.Create(ctx, ada, &models.CreateCommentRequest{Content: "Still here", PostID: post.ID}); err != nil {
		t.Fatalf("Create comment failed: %v", err)
	}
	if err := f.services.Post.Delete(ctx, ada.ID, post.ID); err != nil {
		t.Fatalf("Delete post failed: %v", err)
	}

	comments, _, err := f.services.Comment.ListByPost(ctx, post.ID, models.Page{Number: 1, Limit: 20})
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("expected orphaned comment to remain, got %d", len(comments))
	}
}

func TestHealthService_Counts(t *testing.T) {
	f := newFixture(t)
	ada := f.register(t, "Ada", "ada@example.com").User
	f.createPost(t, ada, "Counted")

	counts, err := f.services.Health.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["users"] != 1 || counts["posts"] != 1 || counts["comments"] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if err := f.services.Health.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestIsOwner(t *testing.T) {
	tests := []struct {
		requester, author string
		want              bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", "550E8400-E29B-41D4-A716-446655440000", true},
		{"550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440001", false},
		{"", "550e8400-e29b-41d4-a716-446655440000", false},
	}
	for _, tt := range tests {
		if got := service.IsOwner(tt.requester, tt.author); got != tt.want {
			t.Errorf("IsOwner(%q, %q) = %v, want %v", tt.requester, tt.author, got, tt.want)
		}
	}
}
