package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playroomlabs/kingsquiz-backend/internal/broadcast"
	"github.com/playroomlabs/kingsquiz-backend/internal/config"
	"github.com/playroomlabs/kingsquiz-backend/internal/openai"
	"github.com/playroomlabs/kingsquiz-backend/internal/question"
	"github.com/playroomlabs/kingsquiz-backend/internal/repository"
	"github.com/playroomlabs/kingsquiz-backend/internal/repository/storage"
	"github.com/playroomlabs/kingsquiz-backend/internal/usecase"
	"github.com/playroomlabs/kingsquiz-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	summaryRepo := repository.NewSummaryRepository(redisStorage.Client)
	publisher := broadcast.NewPublisher(redisStorage.Client)

	aiClient := openai.New(conf.OpenAI.APIKey, conf.OpenAI.Model, conf.OpenAI.BaseURL)
	questionCache := question.NewCache(conf.Question.CacheTTL, conf.Question.CachePruneThreshold)
	questionProvider := question.NewProvider(logger, aiClient, questionCache, question.ProviderConfig{
		RetryInitialInterval: conf.Question.RetryInitialInterval,
		MaxAttempts:          conf.Question.RetryMaxAttempts,
	})

	gameUseCase := usecase.NewGameUseCase(logger, questionProvider, summaryRepo, publisher)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(logger, conf.HTTPPort, gameUseCase); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
