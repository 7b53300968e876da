package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/whyismeleige/rental-ads/internal/config"
	"github.com/whyismeleige/rental-ads/internal/database"
	"github.com/whyismeleige/rental-ads/internal/handlers"
	"github.com/whyismeleige/rental-ads/internal/repository"
	"github.com/whyismeleige/rental-ads/internal/services"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer db.Close(context.Background())

	users := repository.NewUserRepository(db.DB)
	listings := repository.NewListingRepository(db.DB)

	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(users, tokens, cfg.BcryptCost)
	listingService := services.NewListingService(listings, users)

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService, logger),
		handlers.NewListingHandler(listingService, logger),
		tokens,
		logger,
		cfg,
	)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
