package service

import (
	"context"
	"fmt"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const msgPostNotFound = "Post not found"

// postService is the concrete implementation of PostService
type postService struct {
	posts repository.PostRepository
	log   zerolog.Logger
}

// newPostService creates a new PostService
func newPostService(repos *repository.Repositories, log zerolog.Logger) *postService {
	return &postService{
		posts: repos.Post,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// Create stores a new post owned by requester
func (s *postService) Create(ctx context.Context, requester *models.User, req *models.CreatePostRequest) (*models.Post, error) {
	now := clock()
	post := &models.Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    requester.ID,
		Categories:  orEmpty(req.Categories),
		Tags:        orEmpty(req.Tags),
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if errs := validation.ValidatePost(post); len(errs) > 0 {
		return nil, errs
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	post.Author = requester.Summary()

	s.log.Info().Str("post_id", post.ID).Str("author_id", requester.ID).Msg("Post created")
	return post, nil
}

// List returns one page of posts matching filter, newest first
func (s *postService) List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, *models.Pagination, error) {
	posts, total, err := s.posts.List(ctx, filter, page)
	if err != nil {
		return nil, nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, page.Summary(total), nil
}

// ListByUser returns one page of the posts authored by userID
func (s *postService) ListByUser(ctx context.Context, userID string, page models.Page) ([]*models.Post, *models.Pagination, error) {
	userID, err := validation.CanonicalID(userID)
	if err != nil {
		return nil, nil, err
	}
	return s.List(ctx, models.PostFilter{AuthorID: userID, PublishedOnly: true}, page)
}

// Get returns a single post with its owner summary
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	id, err := validation.CanonicalID(id)
	if err != nil {
		return nil, apperror.NotFound(msgPostNotFound)
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	if post == nil {
		return nil, apperror.NotFound(msgPostNotFound)
	}
	return post, nil
}

// Update applies req to the post if requesterID owns it
func (s *postService) Update(ctx context.Context, requesterID, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(requesterID, post.AuthorID) {
		return nil, apperror.Forbidden("Not authorized to update this post")
	}

	applyPostUpdate(post, req)
	if errs := validation.ValidatePost(post); len(errs) > 0 {
		return nil, errs
	}

	post.UpdatedAt = clock()
	if err := s.posts.Update(ctx, post); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound(msgPostNotFound)
		}
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post updated")
	return post, nil
}

// Delete removes the post if requesterID owns it. Comments on the post are
// left in place.
func (s *postService) Delete(ctx context.Context, requesterID, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !IsOwner(requesterID, post.AuthorID) {
		return apperror.Forbidden("Not authorized to delete this post")
	}

	deleted, err := s.posts.Delete(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if !deleted {
		return apperror.NotFound(msgPostNotFound)
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post deleted")
	return nil
}

// applyPostUpdate copies the fields present in req onto post. Empty title
// and content values leave the stored text unchanged.
func applyPostUpdate(post *models.Post, req *models.UpdatePostRequest) {
	if req.Title != nil && *req.Title != "" {
		post.Title = *req.Title
	}
	if req.Content != nil && *req.Content != "" {
		post.Content = *req.Content
	}
	if req.Categories != nil {
		post.Categories = orEmpty(*req.Categories)
	}
	if req.Tags != nil {
		post.Tags = orEmpty(*req.Tags)
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
