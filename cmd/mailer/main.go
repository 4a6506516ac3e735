package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/config"
	"github.com/MohammedElgendy11/my-bookstore/internal/logging"
	"github.com/MohammedElgendy11/my-bookstore/internal/mailer"
)

func main() {
	cfg := config.LoadMailer()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set; deliveries will be rejected by the provider")
	}

	resend := mailer.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, &http.Client{Timeout: 15 * time.Second})
	sender := mailer.New(resend, cfg.From, cfg.OwnerEmail, logger)
	handler := mailer.NewHandler(sender, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "mailer"})
	})
	r.Options("/functions/v1/send-order-email", handler.SendOrderEmail)
	r.Post("/functions/v1/send-order-email", handler.SendOrderEmail)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mailer listening", zap.String("port", cfg.Port))
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
