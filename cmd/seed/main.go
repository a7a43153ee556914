package main

import (
	"ReviewBoard/internal/auth"
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/repo"
	"ReviewBoard/internal/seed"
	"ReviewBoard/internal/service"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// InitDB создаёт таблицы и индексы
	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.DBMaxOpenConns)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sugar.Infow("tables created")

	userService := service.NewUserService(
		repo.NewUserRepository(gormDB, cfg.StoreTimeout),
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewTokenService(cfg.AuthSecret, cfg.TokenTTL),
	)
	s := seed.NewSeeder(userService, repo.NewItemRepository(gormDB, cfg.StoreTimeout), sugar)

	if err := s.Run(ctx); err != nil {
		sugar.Fatalw("seed failed", "error", err)
	}
	sugar.Infow("seed completed")
}
