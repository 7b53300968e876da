package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whyismeleige/rental-ads/internal/config"
	"github.com/whyismeleige/rental-ads/internal/middleware"
	"github.com/whyismeleige/rental-ads/internal/services"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
	"github.com/whyismeleige/rental-ads/pkg/response"
)

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(auth *AuthHandler, listings *ListingHandler, tokens *services.TokenManager, logger *zap.Logger, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Backend API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
			authGroup.POST("/logout", auth.Logout)
			authGroup.GET("/profile", middleware.Auth(tokens), auth.Profile)
		}

		listingGroup := api.Group("/listings")
		{
			listingGroup.GET("", listings.List)
			listingGroup.GET("/my-listings", middleware.Auth(tokens), listings.GetMine)
			listingGroup.GET("/:id", listings.GetByID)

			protected := listingGroup.Group("")
			protected.Use(middleware.Auth(tokens))
			{
				protected.POST("", listings.Create)
				protected.PUT("/:id", listings.Update)
				protected.DELETE("/:id", listings.Delete)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperr.NotFound("Route not found"))
	})

	return router
}

// fail converts err into the error envelope. Unexpected errors are
// logged before being masked as a generic 500.
func fail(c *gin.Context, logger *zap.Logger, err error) {
	if apperr.From(err) == nil {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	response.Error(c, err)
}
