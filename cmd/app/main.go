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

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/config"
	"github.com/osse101/CardBinder_Go/internal/database"
	"github.com/osse101/CardBinder_Go/internal/database/postgres"
	"github.com/osse101/CardBinder_Go/internal/deck"
	"github.com/osse101/CardBinder_Go/internal/handler"
	"github.com/osse101/CardBinder_Go/internal/importsource"
	"github.com/osse101/CardBinder_Go/internal/price"
	"github.com/osse101/CardBinder_Go/internal/server"
	"github.com/osse101/CardBinder_Go/internal/user"
	"github.com/osse101/CardBinder_Go/internal/wishlist"
)

const shutdownTimeout = 10 * time.Second

// @title CardBinder API
// @version 1.0
// @description Card collection, wishlist, deck and price tracking service.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, warning := range cfg.Warnings() {
		slog.Warn(warning)
	}
	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	cardRepo := postgres.NewCardRepository(pool)
	collectionRepo := postgres.NewCollectionRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	deckRepo := postgres.NewDeckRepository(pool)
	sourceRepo := postgres.NewImportSourceRepository(pool)

	cardService := card.NewService(cardRepo)
	services := server.Services{
		User:         user.NewService(userRepo),
		Card:         cardService,
		Collection:   collection.NewService(collectionRepo, cardService),
		Wishlist:     wishlist.NewService(collectionRepo, cardService),
		Price:        price.NewService(priceRepo, cardService),
		Deck:         deck.NewService(deckRepo, cardService),
		ImportSource: importsource.NewService(sourceRepo),
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, services)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	slog.Info("Service started", "port", cfg.Port, "environment", cfg.Environment)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Service stopped")
}
