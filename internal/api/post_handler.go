package api

import (
	"net/http"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultPostLimit = 10

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// Create handles POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if !bind(c, &req) {
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), requester(c), &req)
	if err != nil {
		fail(c, err, "Failed to create post")
		return
	}

	h.log.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("Post created")
	respond(c, http.StatusCreated, "Post created successfully", post)
}

// List handles GET /api/posts
// Query: page, limit, search, category
func (h *PostHandler) List(c *gin.Context) {
	filter := models.PostFilter{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		PublishedOnly: true,
	}

	posts, pagination, err := h.services.Post.List(c.Request.Context(), filter, pageFromQuery(c, defaultPostLimit))
	if err != nil {
		fail(c, err, "Failed to fetch posts")
		return
	}

	respondPage(c, posts, pagination)
}

// ListByUser handles GET /api/posts/user/:userId
func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, pagination, err := h.services.Post.ListByUser(c.Request.Context(), c.Param("userId"), pageFromQuery(c, defaultPostLimit))
	if err != nil {
		fail(c, err, "Failed to fetch user posts")
		return
	}

	respondPage(c, posts, pagination)
}

// Get handles GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.services.Post.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch post")
		return
	}

	respond(c, http.StatusOK, "", post)
}

// Update handles PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req models.UpdatePostRequest
	if !bind(c, &req) {
		return
	}

	post, err := h.services.Post.Update(c.Request.Context(), requester(c).ID, c.Param("id"), &req)
	if err != nil {
		fail(c, err, "Failed to update post")
		return
	}

	h.log.Info().Str("post_id", post.ID).Msg("Post updated")
	respond(c, http.StatusOK, "Post updated successfully", post)
}

// Delete handles DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), requester(c).ID, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete post")
		return
	}

	h.log.Info().Str("post_id", c.Param("id")).Str("user_id", requester(c).ID).Msg("Post deleted")
	respond(c, http.StatusOK, "Post deleted successfully", nil)
}
