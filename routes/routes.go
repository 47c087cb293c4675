package routes

import (
	"net/http"
	"time"

	"vakeel/handlers"
	"vakeel/middleware"
	"vakeel/models"
	"vakeel/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLawyerRoutes registers the directory endpoints.
func RegisterLawyerRoutes(r *gin.Engine, h *handlers.LawyerHandler) {
	api := r.Group("/api")
	{
		// Public endpoints.
		api.POST("/register", h.RegisterLawyerHandler)
		api.POST("/login", h.AuthenticateLawyerHandler)
		api.GET("/logout", h.LogoutHandler)
		api.POST("/search", h.SearchHandler)
		api.GET("/lawyer/:enrollment_id", h.GetPublicProfileHandler)

		// Protected routes (require the session cookie).
		protected := api.Group("")
		protected.Use(middleware.CookieAuthMiddleware())
		protected.GET("/lawyer", h.GetSelfHandler)
		protected.PUT("/lawyer", h.UpdateSelfHandler)
		protected.GET("/me", h.MeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.LawyerHandler) {
	models.RegisterValidators()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLawyerRoutes(r, h)
	RegisterHealthRoute(r)
}
