package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/config"
	httpDelivery "github.com/tourguide-client/internal/delivery/http"
	"github.com/tourguide-client/internal/delivery/http/handler"
	"github.com/tourguide-client/internal/pkg/auth"
	"github.com/tourguide-client/internal/pkg/logger"
	"github.com/tourguide-client/internal/repository/memory"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tour Guide API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize stores and seed demo data
	tourStore := memory.NewTourStore()
	enrollmentStore := memory.NewEnrollmentStore()
	userStore := memory.NewUserStore()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := memory.SeedTours(ctx, tourStore); err != nil {
		cancel()
		log.Fatal("Failed to seed tours", zap.Error(err))
	}
	cancel()
	log.Info("Demo tours seeded")

	// 4. Initialize auth
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userStore, jwtManager, log)
	tourHandler := handler.NewTourHandler(tourStore, log)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentStore, tourStore, log)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		jwtManager,
		userStore,
		authHandler,
		tourHandler,
		enrollmentHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
