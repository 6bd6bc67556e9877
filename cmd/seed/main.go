package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"deskswap/internal/cache"
	"deskswap/internal/config"
	"deskswap/internal/db"
	"deskswap/internal/importer"
	"deskswap/internal/logger"
	"deskswap/internal/repository"
	"deskswap/internal/service"
)

func main() {
	var (
		rosterPath = flag.String("roster", "roster.csv", "path to the roster file (.xlsx or .csv)")
		year       = flag.Int("year", 0, "year applied to day/month cells (0 = ROSTER_YEAR from env)")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	if *year != 0 {
		cfg.RosterYear = *year
	}

	zlog, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting roster seed",
		zap.String("roster", *rosterPath),
		zap.Int("year", cfg.RosterYear))

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}

	if err := db.Migrate(gormDB); err != nil {
		zlog.Fatal("auto-migrate", zap.Error(err))
	}

	file, err := os.Open(*rosterPath)
	if err != nil {
		zlog.Fatal("open roster file", zap.Error(err))
	}
	defer file.Close()

	entries, err := importer.Load(file, *rosterPath, cfg.RosterYear)
	if err != nil {
		zlog.Fatal("parse roster", zap.Error(err))
	}
	zlog.Info("roster parsed", zap.Int("entries", len(entries)))

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	repos := repository.New(gormDB)
	importService := service.NewImportService(repos, repos, cacheClient, zlog, cfg.InitialPassword, cfg.InitialCredits)

	summary, err := importService.ImportRoster(context.Background(), entries)
	if err != nil {
		zlog.Fatal("import roster", zap.Error(err))
	}

	zlog.Info("seed completed",
		zap.Int("users_created", summary.Users),
		zap.Int("workstations_created", summary.Workstations),
		zap.Int("allocations_created", summary.Allocations))
}
