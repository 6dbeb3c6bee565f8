package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/email"
	"github.com/motibot/motibot/internal/handler"
	"github.com/motibot/motibot/internal/logger"
	"github.com/motibot/motibot/internal/middleware"
	"github.com/motibot/motibot/internal/quote"
	"github.com/motibot/motibot/internal/router"
	"github.com/motibot/motibot/internal/scheduler"
	"github.com/motibot/motibot/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Msg("starting motibot server")

	// Missing settings are warnings, not fatal: the affected operation
	// fails at call time with a proper error instead.
	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize email sender
	sender, err := email.NewSender(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize email sender")
	}
	log.Info().Str("provider", cfg.Email.Provider).Msg("email sender initialized")

	// Initialize quote generator
	gen := quote.NewGroqGenerator(cfg.Groq, log)

	// Initialize dispatch service
	dispatchSvc := service.NewDispatchService(gen, sender, cfg, log)

	// Start the daily scheduler
	sched := scheduler.New(cfg.Schedule.Hour, cfg.Schedule.Minute, func(ctx context.Context) {
		if _, err := dispatchSvc.Dispatch(ctx, ""); err != nil {
			log.Error().Err(err).Msg("scheduled dispatch failed")
		}
	}, log)
	go sched.Run(ctx)

	// Initialize handlers
	h := handler.New(log, cfg, dispatchSvc)

	// Initialize middleware
	mw := middleware.New(log)

	// Set up router
	r := router.New(h, mw)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
