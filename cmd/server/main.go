package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coopebred/registro-socios/internal/config"
	"github.com/coopebred/registro-socios/internal/database"
	"github.com/coopebred/registro-socios/internal/repository"
	"github.com/coopebred/registro-socios/internal/server"
)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level}))
}

func main() {
	slog.SetDefault(newLogger(slog.LevelInfo))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.LogLevel))

	slog.Info("Starting registration gateway", "store", cfg.Store.Driver)

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		slog.Error("Failed to initialize member store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.NewRouter(store, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}
	slog.Info("Server exited")
}

// openStore builds the MemberStore selected by the store driver
func openStore(cfg config.StoreConfig) (repository.MemberStore, func(), error) {
	if cfg.Driver == config.DriverREST {
		slog.Info("Using Supabase REST store", "url", cfg.URL, "timeout", cfg.Timeout)
		return repository.NewRESTStore(cfg.URL, cfg.Key, cfg.Timeout), func() {}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := database.Close(db); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}
	return repository.NewGormStore(db), closeFn, nil
}
