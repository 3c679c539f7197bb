package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-sharing-backend/internal/config"
	"recipe-sharing-backend/internal/database"
	"recipe-sharing-backend/internal/handler"
	"recipe-sharing-backend/internal/middleware"
	"recipe-sharing-backend/internal/observability"
	"recipe-sharing-backend/internal/repository"
	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/internal/storage"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	utils.NewLogger(cfg.Server.GinMode)
	slog.Info("configuration loaded")

	// 2. Token manager with injected secrets and expiries
	tokens := utils.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Object storage for recipe images
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	images, err := storage.New(ctx, cfg.Storage)
	cancel()
	if err != nil {
		slog.Error("failed to initialize image storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	ratingRepo := repository.NewRatingRepo(db)
	bookmarkRepo := repository.NewBookmarkRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, tokens)
	recipeService := service.NewRecipeService(recipeRepo, auditRepo, images)
	commentService := service.NewCommentService(commentRepo, recipeRepo)
	ratingService := service.NewRatingService(ratingRepo, recipeRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, recipeRepo)
	userService := service.NewUserService(userRepo)

	// 7. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	metrics := observability.NewMetrics()
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 8. Register handlers and routes
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg.Cookie, cfg.JWT.RefreshTokenExpiry),
		Recipe:   handler.NewRecipeHandler(recipeService),
		Comment:  handler.NewCommentHandler(commentService),
		Rating:   handler.NewRatingHandler(ratingService),
		Bookmark: handler.NewBookmarkHandler(bookmarkService),
		User:     handler.NewUserHandler(userService),
	}, middleware.AuthMiddleware(tokens))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 9. Setup graceful shutdown
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server exited")
}
