package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/foliate-press/foliate/internal/adapters/content"
	"github.com/foliate-press/foliate/internal/adapters/env"
	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/adapters/queue"
	"github.com/foliate-press/foliate/internal/logger"
	"github.com/foliate-press/foliate/internal/usecase"
)

func main() {
	cfg, err := env.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New("generate", cfg.LogLevel)

	store, cleanup, err := openStore(cfg)
	if err != nil {
		log.Error("open question queue", slog.Any("err", err))
		os.Exit(1)
	}
	defer cleanup()

	source, err := content.NewTemplateSource()
	if err != nil {
		log.Error("init content source", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	service := usecase.NewGenerateService(store, source, fs.NewOSFileSystem(), log)
	out := service.GeneratePosts(ctx, usecase.GenerateInput{PostsDir: cfg.PostsDir})
	if out.Error != nil {
		log.Error("generate posts", slog.Any("err", out.Error))
		os.Exit(1)
	}

	log.Info("generation finished",
		slog.Int("target", out.Target),
		slog.Int("generated", out.Generated),
		slog.Int("pending", out.Pending))
}

func openStore(cfg *env.Config) (usecase.QuestionStore, func(), error) {
	switch cfg.QueueDriver {
	case env.QueueDriverSQLite:
		store, err := queue.OpenSQLite(cfg.QueuePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store, err := queue.OpenCSV(cfg.QueuePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
