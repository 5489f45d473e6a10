package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/souvikghost/Souvik-Tech-Agency/config"
	"github.com/souvikghost/Souvik-Tech-Agency/db"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/geo"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/handler"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/ledger"
	repo "github.com/souvikghost/Souvik-Tech-Agency/internal/auth/repository/postgres"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/observability"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Production())

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		logger.Error("sentry init failed", "error", err)
	}
	defer observability.FlushSentry()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	if err := db.RunMigrations(ctx, dbPool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	accountRepo := repo.NewAccountRepository(dbPool)
	accessRepo := repo.NewAccessLogRepository(dbPool)

	geoClient := geo.NewClient(cfg.GeoLookupBaseURL, time.Duration(cfg.GeoLookupTimeoutSec)*time.Second, logger)
	ledgerService := ledger.NewService(accessRepo, geoClient, logger)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.SessionExpiryHours)
	authService := service.NewAuthService(accountRepo, tokenService, ledgerService)
	accountService := service.NewAccountService(accountRepo)

	authHandler := handler.NewAuthHandler(authService, tokenService, cfg, logger)
	userHandler := handler.NewUserHandler(accountService, ledgerService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, userHandler)

	logger.Info("listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
