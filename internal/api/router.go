package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	apiVersion    = "1.0.0"
	pingTimeout   = 2 * time.Second
	msgRouteFmt   = "Route %s not found"
	msgWelcome    = "Welcome to the Blog API!"
	msgHealthy    = "Server running smoothly"
	msgNoMetrics  = "Failed to collect metrics"
	defaultMaxMiB = 10
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	maxBody := cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxMiB << 20
	}

	// Middleware, outermost first. The error handler runs after the route
	// so it sits innermost.
	router.Use(recoveryMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(bodyLimitMiddleware(maxBody))
	router.Use(loggingMiddleware(log))
	router.Use(errorMiddleware(log))

	// Handlers
	userHandler := NewUserHandler(services, log)
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	requireAuth := RequireAuth(services.Auth)

	router.GET("/", welcome)
	router.GET("/health", healthCheck(services.Health, time.Now()))
	router.GET("/metrics", metricsHandler(services.Health))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", requireAuth, userHandler.Logout)
			users.GET("/me", requireAuth, userHandler.Me)
			users.PUT("/me", requireAuth, userHandler.UpdateMe)
			users.GET("/:id", userHandler.GetUser)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", requireAuth, postHandler.Create)
			posts.GET("", postHandler.List)
			posts.GET("/user/:userId", postHandler.ListByUser)
			posts.GET("/:id", postHandler.Get)
			posts.PUT("/:id", requireAuth, postHandler.Update)
			posts.DELETE("/:id", requireAuth, postHandler.Delete)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", requireAuth, commentHandler.Create)
			comments.GET("/post/:postId", commentHandler.ListByPost)
			comments.PUT("/:id", requireAuth, commentHandler.Update)
			comments.DELETE("/:id", requireAuth, commentHandler.Delete)
		}
	}

	router.NoRoute(routeNotFound)

	return router
}

// welcome returns the API banner
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgWelcome,
		"version": apiVersion,
		"endpoints": gin.H{
			"users":    "/api/users",
			"posts":    "/api/posts",
			"comments": "/api/comments",
		},
	})
}

// healthCheck returns the uptime and store reachability
func healthCheck(health service.HealthService, started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, pingTimeout)
		defer cancel()

		database := "connected"
		if err := health.Ping(ctx); err != nil {
			database = "disconnected"
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"status":   msgHealthy,
			"uptime":   formatUptime(time.Since(started)),
			"database": database,
		})
	}
}

// metricsHandler returns stored record counts
func metricsHandler(health service.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := health.Counts(c.Request.Context())
		if err != nil {
			fail(c, err, msgNoMetrics)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// routeNotFound answers every unmatched route
func routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.Response{
		Success: false,
		Message: fmt.Sprintf(msgRouteFmt, c.Request.URL.RequestURI()),
	})
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
