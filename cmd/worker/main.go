package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/owuwix/wiishy/cmd/config"
	"github.com/owuwix/wiishy/thirdparty/rabbitmq"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
)

// The activity worker drains the wishlist activity queue and forwards each
// event to the API's internal ingest endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "activity-worker"); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting activity worker", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Activity worker running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Activity worker shutting down")
}
