package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/clients/cache"
	"max.ks1230/money-tracker/internal/clients/kafka"
	"max.ks1230/money-tracker/internal/clients/terminal"
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

	closer, err := tracing.Init("money-tracker")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	store, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}

	manager := session.NewManager(store, store)
	generator := summary.NewGenerator(store)

	handler := newHandler(conf, manager, generator)
	client := terminal.New()
	svc := commands.NewService(client, handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client.Listen(ctx, svc)
}

// newHandler enables the async report pipeline only when both kafka
// and memcached are configured; otherwise reports are generated
// in-process.
func newHandler(conf *config.Service, manager *session.Manager, generator *summary.Generator) *commands.HandlerService {
	if len(conf.Kafka().Brokers()) == 0 || len(conf.Memcached().Hosts()) == 0 {
		return commands.NewHandler(manager, generator, nil, nil, conf.App())
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache:", zap.Error(err))
	}
	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	return commands.NewHandler(manager, generator, producer, mc, conf.App())
}
