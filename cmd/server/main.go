package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/tourguide/internal/api"
	"github.com/neexbeast/tourguide/internal/config"
	"github.com/neexbeast/tourguide/internal/guide"
	"github.com/neexbeast/tourguide/internal/observability"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading configuration", "err", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resolve the remote model once; without it every guide is a fallback.
	var remote guide.Generator
	if !cfg.HasAPIKey() {
		log.Warn("no Gemini key found, serving fallback guides only", "env", config.APIKeyEnvVars)
	} else {
		gemini, err := guide.NewGeminiGenerator(ctx, cfg.APIKey)
		if err != nil {
			log.Warn("gemini client unavailable, serving fallback guides only", "err", err)
		} else {
			defer func() { _ = gemini.Close() }()
			remote = gemini
			log.Info("gemini client ready", "model", guide.ModelName, "memory", guide.MemoryWindow)
		}
	}

	// Wire dependencies.
	metrics := observability.NewMetrics()
	provider := guide.NewProvider(remote, guide.NewFallbackGenerator(), metrics, log)
	handlers := api.NewHandlers(provider, log)
	router := api.NewRouter(handlers, metrics, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: guide.RemoteTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", "port", cfg.Port, "mode", provider.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening: %w", err)
		}
		return nil
	})

	// Graceful shutdown on SIGINT / SIGTERM or listener failure.
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server shut down cleanly")
	return nil
}
