package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/clients/cache"
	"max.ks1230/money-tracker/internal/clients/kafka"
	"max.ks1230/money-tracker/internal/config"
	"max.ks1230/money-tracker/internal/logger"
	"max.ks1230/money-tracker/internal/model/commands"
	"max.ks1230/money-tracker/internal/model/storage"
	"max.ks1230/money-tracker/internal/model/summary"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	store, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache:", zap.Error(err))
	}

	generator := summary.NewGenerator(store)
	symbol := conf.App().CurrencySymbol()
	render := func(report *summary.Report) string {
		return commands.FormatReport(report, symbol)
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, mc, render)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
