package api

import (
	"net/http"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultCommentLimit = 20

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CreateCommentRequest
	if !bind(c, &req) {
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), requester(c), &req)
	if err != nil {
		fail(c, err, "Failed to create comment")
		return
	}

	h.log.Info().Str("comment_id", comment.ID).Str("post_id", comment.PostID).Msg("Comment created")
	respond(c, http.StatusCreated, "Comment created successfully", comment)
}

// ListByPost handles GET /api/comments/post/:postId
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, pagination, err := h.services.Comment.ListByPost(c.Request.Context(), c.Param("postId"), pageFromQuery(c, defaultCommentLimit))
	if err != nil {
		fail(c, err, "Failed to fetch comments")
		return
	}

	respondPage(c, comments, pagination)
}

// Update handles PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req models.UpdateCommentRequest
	if !bind(c, &req) {
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), requester(c).ID, c.Param("id"), &req)
	if err != nil {
		fail(c, err, "Failed to update comment")
		return
	}

	h.log.Info().Str("comment_id", comment.ID).Msg("Comment updated")
	respond(c, http.StatusOK, "Comment updated successfully", comment)
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), requester(c).ID, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete comment")
		return
	}

	h.log.Info().Str("comment_id", c.Param("id")).Str("user_id", requester(c).ID).Msg("Comment deleted")
	respond(c, http.StatusOK, "Comment deleted successfully", nil)
}
