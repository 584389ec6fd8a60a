package api

import (
	"net/http"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles account and profile endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.services.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "Failed to register user")
		return
	}

	h.log.Info().Str("user_id", resp.User.ID).Msg("User registered")
	respond(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "Failed to log in")
		return
	}

	h.log.Info().Str("user_id", resp.User.ID).Msg("User logged in")
	respond(c, http.StatusOK, "Login successful", resp)
}

// Logout handles POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.services.Auth.Logout(c.Request.Context(), c.GetString(tokenKey)); err != nil {
		fail(c, err, "Failed to log out")
		return
	}

	h.log.Info().Str("user_id", requester(c).ID).Msg("User logged out")
	respond(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	respond(c, http.StatusOK, "", requester(c))
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.services.Auth.UpdateProfile(c.Request.Context(), requester(c), &req)
	if err != nil {
		fail(c, err, "Failed to update profile")
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", user)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.services.Auth.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	respond(c, http.StatusOK, "", user)
}
