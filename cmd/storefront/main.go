package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
	"github.com/MohammedElgendy11/my-bookstore/internal/checkout"
	"github.com/MohammedElgendy11/my-bookstore/internal/config"
	"github.com/MohammedElgendy11/my-bookstore/internal/httpapi"
	"github.com/MohammedElgendy11/my-bookstore/internal/logging"
	"github.com/MohammedElgendy11/my-bookstore/internal/notify"
)

func main() {
	cfg := config.LoadStorefront()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	books, err := catalog.NewStore()
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	carts := cart.NewStore()

	sink := notify.NewClient(cfg.OrderEmailURL, &http.Client{Timeout: cfg.OrderEmailTimeout})
	coordinator, err := checkout.NewCoordinator(checkout.CoordinatorDeps{
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("build coordinator", zap.Error(err))
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:          logger,
		Books:           books,
		Carts:           carts,
		Coordinator:     coordinator,
		CheckoutTimeout: cfg.OrderEmailTimeout,
		AllowOrigins:    cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Abandoned sessions get their carts discarded.
	go func() {
		ticker := time.NewTicker(cfg.CartMaxIdle / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := carts.Sweep(cfg.CartMaxIdle); n > 0 {
					logger.Info("swept idle carts", zap.Int("dropped", n))
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening",
			zap.String("port", cfg.Port),
			zap.Int("books", books.Len()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Fatal("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown error", zap.Error(err))
	}
}
