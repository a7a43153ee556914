package main

import (
	"ReviewBoard/internal/auth"
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/handlers"
	"ReviewBoard/internal/middleware"
	"ReviewBoard/internal/repo"
	"ReviewBoard/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.DBMaxOpenConns)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB, cfg.StoreTimeout)
	itemRepo := repo.NewItemRepository(gormDB, cfg.StoreTimeout)
	reviewRepo := repo.NewReviewRepository(gormDB, cfg.StoreTimeout)
	commentRepo := repo.NewCommentRepository(gormDB, cfg.StoreTimeout)

	tokens := auth.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	guard := service.NewOwnershipGuard(cfg.RevealForeignOwnership)

	h := handlers.NewHandler(handlers.Services{
		Users:    service.NewUserService(userRepo, hasher, tokens),
		Items:    service.NewItemService(itemRepo),
		Reviews:  service.NewReviewService(reviewRepo, itemRepo, guard, sugar),
		Comments: service.NewCommentService(commentRepo, reviewRepo, guard, sugar),
		Health:   func(ctx context.Context) error { return repo.Ping(ctx, gormDB) },
	}, sugar)

	addr := cfg.BaseURL

	// секрет и строку подключения не логируем
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
		"BcryptCost", cfg.BcryptCost,
		"StoreTimeout", cfg.StoreTimeout,
		"RevealForeignOwnership", cfg.RevealForeignOwnership,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	sugar.Infow("Starting server", "addr", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
