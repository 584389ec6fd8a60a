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

const msgCommentNotFound = "Comment not found"

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		comments: repos.Comment,
		posts:    repos.Post,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Create attaches a new comment by requester to an existing post
func (s *commentService) Create(ctx context.Context, requester *models.User, req *models.CreateCommentRequest) (*models.Comment, error) {
	postID, err := validation.CanonicalID(req.PostID)
	if err != nil {
		return nil, apperror.NotFound(msgPostNotFound)
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	if post == nil {
		return nil, apperror.NotFound(msgPostNotFound)
	}

	now := clock()
	comment := &models.Comment{
		ID:         uuid.NewString(),
		Content:    req.Content,
		AuthorID:   requester.ID,
		PostID:     post.ID,
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if errs := validation.ValidateComment(comment); len(errs) > 0 {
		return nil, errs
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	comment.Author = requester.Summary()

	s.log.Info().Str("comment_id", comment.ID).Str("post_id", post.ID).Msg("Comment created")
	return comment, nil
}

// ListByPost returns one page of the approved comments on postID, newest
// first. An unknown post yields an empty page.
func (s *commentService) ListByPost(ctx context.Context, postID string, page models.Page) ([]*models.Comment, *models.Pagination, error) {
	postID, err := validation.CanonicalID(postID)
	if err != nil {
		return nil, nil, err
	}

	filter := models.CommentFilter{PostID: postID, ApprovedOnly: true}
	comments, total, err := s.comments.List(ctx, filter, page)
	if err != nil {
		return nil, nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, page.Summary(total), nil
}

// Update replaces the content of a comment owned by requesterID
func (s *commentService) Update(ctx context.Context, requesterID, id string, req *models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(requesterID, comment.AuthorID) {
		return nil, apperror.Forbidden("Not authorized to update this comment")
	}

	if req.Content != nil && *req.Content != "" {
		comment.Content = *req.Content
	}
	if errs := validation.ValidateComment(comment); len(errs) > 0 {
		return nil, errs
	}

	comment.UpdatedAt = clock()
	if err := s.comments.Update(ctx, comment); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound(msgCommentNotFound)
		}
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment owned by requesterID
func (s *commentService) Delete(ctx context.Context, requesterID, id string) error {
	comment, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !IsOwner(requesterID, comment.AuthorID) {
		return apperror.Forbidden("Not authorized to delete this comment")
	}

	deleted, err := s.comments.Delete(ctx, comment.ID)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	if !deleted {
		return apperror.NotFound(msgCommentNotFound)
	}

	s.log.Info().Str("comment_id", comment.ID).Msg("Comment deleted")
	return nil
}

func (s *commentService) get(ctx context.Context, id string) (*models.Comment, error) {
	id, err := validation.CanonicalID(id)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	if comment == nil {
		return nil, apperror.NotFound(msgCommentNotFound)
	}
	return comment, nil
}
