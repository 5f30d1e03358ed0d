package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/clients/cache"
	"max.ks1230/money-tracker/internal/clients/kafka"
	"max.ks1230/money-tracker/internal/clients/tg"
	"max.ks1230/money-tracker/internal/config"
	"max.ks1230/money-tracker/internal/logger"
	"max.ks1230/money-tracker/internal/model/commands"
	"max.ks1230/money-tracker/internal/model/session"
	"max.ks1230/money-tracker/internal/model/storage"
	"max.ks1230/money-tracker/internal/model/summary"
	"max.ks1230/money-tracker/internal/tracing"
)

func main() {
	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init("money-tracker-bot")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	store, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}

	manager := session.NewManager(store, store)
	generator := summary.NewGenerator(store)

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache:", zap.Error(err))
	}
	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	handler := commands.NewHandler(manager, generator, producer, mc, conf.App())
	svc := commands.NewService(client, handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client.ListenUpdates(ctx, svc)
}
