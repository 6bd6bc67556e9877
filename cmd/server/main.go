package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "deskswap/docs" // swagger docs

	"deskswap/internal/auth"
	"deskswap/internal/cache"
	"deskswap/internal/config"
	"deskswap/internal/db"
	"deskswap/internal/handler"
	"deskswap/internal/logger"
	"deskswap/internal/model"
	"deskswap/internal/repository"
	"deskswap/internal/router"
	"deskswap/internal/service"
)

// @title DeskSwap API
// @version 1.0
// @description Workstation shift allocation tracker with a peer-to-peer swap workflow.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		zlog.Warn("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.SwapRequest{},
			&model.Allocation{},
			&model.Workstation{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				zlog.Warn("drop table failed (may not exist)", zap.Error(err))
			}
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		zlog.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	repos := repository.New(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(repos.User, jwtService, tokenStore)
	rosterService := service.NewRosterService(repos, cacheClient)
	swapService := service.NewSwapService(repos, repos, cacheClient, zlog)
	importService := service.NewImportService(repos, repos, cacheClient, zlog, cfg.InitialPassword, cfg.InitialCredits)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	swapHandler := handler.NewSwapHandler(swapService)
	importHandler := handler.NewImportHandler(importService, cfg.RosterYear)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		rosterHandler,
		swapHandler,
		importHandler,
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
	}
	zlog.Info("swagger documentation available", zap.String("url", swaggerURL))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server start", zap.Error(err))
	}
}
