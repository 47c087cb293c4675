package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vakeel/config"
	"vakeel/cron"
	"vakeel/database"
	lawyerRepo "vakeel/database/repository/lawyer"
	"vakeel/handlers"
	"vakeel/middleware"
	"vakeel/routes"
	"vakeel/services/lawyer"
	"vakeel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration and logging first.
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.AppConfig.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// MongoDB is a hard dependency; Redis only backs logout revocation and
	// may be absent.
	database.InitDB()
	utils.InitAuthCache()

	repo := lawyerRepo.NewMongoLawyerRepo()
	svc := lawyer.NewDefaultLawyerService(repo)
	h := handlers.NewLawyerHandler(svc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(r, h)

	utils.StartHealthMonitor(utils.AuthCacheClient, database.MongoClient)
	sweeper := cron.StartPremiumSweeper(svc)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
