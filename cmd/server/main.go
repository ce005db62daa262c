package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym_admin/internal/api"
	"gym_admin/internal/app/service"
	"gym_admin/internal/common/security"
	"gym_admin/internal/domain/repository"
	"gym_admin/internal/platform/config"
	"gym_admin/internal/platform/database"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Configuration
	config.Load()
	logrus.Info("Configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()
	logrus.Info("JWT initialized")

	// 3. Connect to MongoDB
	ctx := context.Background()
	db, err := database.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDBName, config.AppConfig.MongoTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to database")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Error closing database connection")
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("Could not create indexes")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(db.DB)
	memberRepo := repository.NewMongoMemberRepository(db.DB)
	packageRepo := repository.NewMongoPackageRepository(db.DB)
	membershipRepo := repository.NewMongoMembershipRepository(db.DB)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	memberService := service.NewMemberService(memberRepo)
	packageService := service.NewPackageService(packageRepo)
	membershipService := service.NewMembershipService(membershipRepo, memberRepo, packageRepo, userRepo)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(memberRepo, membershipRepo, packageRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, memberService, packageService, membershipService, userService, statsService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.WithField("port", config.AppConfig.APIPort).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Could not start server")
		}
	}()

	<-stop // Wait for interrupt signal

	logrus.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("Server shutdown failed")
	}

	logrus.Info("Server stopped gracefully")
}
