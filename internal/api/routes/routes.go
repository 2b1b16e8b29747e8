package routes

import (
	"net/http"

	"big-brain-backend/internal/api/handlers"
	"big-brain-backend/internal/api/middleware"
	"big-brain-backend/internal/auth"
	"big-brain-backend/internal/config"
	"big-brain-backend/internal/ratelimit"
	"big-brain-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, services *service.Container, limiter *ratelimit.KeyedRateLimiter) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Leave room for the form fields around the uploaded file
	router.MaxMultipartMemory = cfg.MaxUploadBytes + (1 << 20)

	// Initialize auth
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(tokenService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, services.Embedder)
	contentHandler := handlers.NewContentHandler(services.Content, cfg.MaxUploadBytes)
	searchHandler := handlers.NewSearchHandler(services.Content)
	shareHandler := handlers.NewShareHandler(services.Shares)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded images
	router.StaticFS("/files", gin.Dir(services.Blobs.Root(), false))

	brain := router.Group("/api/v1/brain")
	{
		// Public share view
		brain.GET("/share/:hashId", shareHandler.GetSharedContent)

		protected := brain.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			throttled := middleware.RateLimit(limiter)

			protected.GET("/me", contentHandler.ListContent)
			protected.POST("/create", throttled, contentHandler.CreateContent)
			protected.POST("/search", throttled, searchHandler.Search)

			protected.POST("/share", shareHandler.CreateShareLink)
			protected.DELETE("/share/:hashId", shareHandler.RevokeShareLink)

			protected.GET("/:contentId", contentHandler.GetContent)
			protected.PUT("/:contentId", contentHandler.UpdateContent)
			protected.DELETE("/:contentId", contentHandler.DeleteContent)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Envelope{Success: false, Msg: "Content not found"})
	})

	return router
}
