package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/thirdparty/rabbitmq"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

// Delivery worker: drains the item delivery queue, runs RCON commands through
// the bridge and reports completion back to the platform API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	apiURL := os.Getenv("PLATFORM_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:" + cfg.Server.Port
	}
	bridgeURL := os.Getenv("RCON_BRIDGE_URL")
	if bridgeURL == "" {
		bridgeURL = "http://localhost:9090"
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		apiURL, cfg.Internal.APIKey, bridgeURL,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Delivery worker running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Delivery worker stopping")
}
