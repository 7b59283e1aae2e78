package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/TonySyv/yshstob/internal/app/analytics"
	"github.com/TonySyv/yshstob/internal/app/config"
	"github.com/TonySyv/yshstob/internal/app/logger"
	"github.com/TonySyv/yshstob/internal/app/server"
	"github.com/TonySyv/yshstob/internal/app/service"
	"github.com/TonySyv/yshstob/internal/app/storage"
)

func newStore() (storage.KVStore, error) {
	if config.Settings.DatabaseDSN != "" {
		pool, err := sql.Open("pgx", config.Settings.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store := storage.NewDBKV(pool)
		if err = store.Bootstrap(); err != nil {
			return nil, err
		}
		logger.Log.Infow("using the Postgres key-value store")
		return store, nil
	}
	if config.Settings.RedisAddr != "" {
		store, err := storage.NewRedisKV(context.Background(), config.Settings.RedisAddr)
		if err != nil {
			return nil, err
		}
		logger.Log.Infow("using the Redis key-value store", "addr", config.Settings.RedisAddr)
		return store, nil
	}
	var journal *storage.FileJournal
	if config.Settings.FileStoragePath != "" {
		journal = storage.NewFileJournal(config.Settings.FileStoragePath)
	}
	logger.Log.Infow("using the in-memory key-value store",
		"journal", config.Settings.FileStoragePath)
	return storage.NewMemoryKV(journal)
}

func main() {
	config.ParseFlags()
	if err := env.Parse(&config.Settings); err != nil {
		logger.Log.Fatalf("parsing env variables was not successful: %v", err)
	}
	config.Settings.Sanitize()
	if err := logger.Initialize(config.Settings.LogLevel); err != nil {
		logger.Log.Fatalf("could not initialize the logger: %v", err)
	}

	store, err := newStore()
	if err != nil {
		logger.Log.Fatalf("could not initialize the store: %v", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Log.Errorf("error closing the store: %v", closeErr)
		}
	}()

	shortenerService := service.NewService(store)
	aggregator := analytics.NewAggregator(store)

	doneChan := make(chan struct{})
	pipeline := analytics.NewPipeline(aggregator, doneChan)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		received := <-signalChan
		logger.Log.Infow("received a shutdown signal", "signal", received.String())
		close(doneChan)
	}()

	router := server.ShortenerRouter(&shortenerService, aggregator, pipeline)
	logger.Log.Infow("starting the server", "address", config.Settings.Address)
	if err = server.Run(config.Settings.Address, router, doneChan); err != nil {
		logger.Log.Fatalf("server error: %v", err)
	}
}
