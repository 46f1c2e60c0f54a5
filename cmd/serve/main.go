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

	"github.com/foliate-press/foliate/internal/adapters/env"
	sitehttp "github.com/foliate-press/foliate/internal/adapters/http"
	"github.com/foliate-press/foliate/internal/logger"
)

func main() {
	cfg, err := env.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New("serve", cfg.LogLevel)

	if _, err := os.Stat(cfg.OutputDir); err != nil {
		log.Error("output directory missing, run the build first",
			slog.String("dir", cfg.OutputDir), slog.Any("err", err))
		os.Exit(1)
	}

	handler := sitehttp.NewSiteHandler(cfg.OutputDir, log)

	server := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("preview server starting", slog.String("addr", cfg.BindAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}
