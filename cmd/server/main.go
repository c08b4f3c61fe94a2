package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/sayhighz/nexark-platform/application/auth"
	contentapp "github.com/sayhighz/nexark-platform/application/content"
	creditsapp "github.com/sayhighz/nexark-platform/application/credits"
	serversapp "github.com/sayhighz/nexark-platform/application/servers"
	shopapp "github.com/sayhighz/nexark-platform/application/shop"
	"github.com/sayhighz/nexark-platform/cmd/config"
	redisclient "github.com/sayhighz/nexark-platform/cmd/redis"
	contentRepo "github.com/sayhighz/nexark-platform/repository/content"
	creditsRepo "github.com/sayhighz/nexark-platform/repository/credits"
	itemRepo "github.com/sayhighz/nexark-platform/repository/item"
	purchaseRepo "github.com/sayhighz/nexark-platform/repository/purchase"
	redisRepo "github.com/sayhighz/nexark-platform/repository/redis"
	serverRepo "github.com/sayhighz/nexark-platform/repository/server"
	txRepo "github.com/sayhighz/nexark-platform/repository/tx"
	userRepo "github.com/sayhighz/nexark-platform/repository/user"
	"github.com/sayhighz/nexark-platform/thirdparty/rabbitmq"
	"github.com/sayhighz/nexark-platform/thirdparty/steam"
	"github.com/sayhighz/nexark-platform/transport"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

// @title NexARK Platform API
// @version 1.0
// @description Community platform API: shop, credits, Steam auth, servers
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Delivery publisher; the shop works without it, purchases just stay pending
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, deliveries disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	steamClient := steam.New(steam.Config{
		APIKey:    cfg.Steam.APIKey,
		Realm:     cfg.Steam.Realm,
		ReturnURL: cfg.Steam.ReturnURL,
	})

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	PurchaseRepo := purchaseRepo.NewPurchaseRepository(db)
	CreditsRepo := creditsRepo.NewCreditsRepository(db)
	ServerRepo := serverRepo.NewServerRepository(db)
	ContentRepo := contentRepo.NewContentRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, steamClient)
	ShopApp := shopapp.NewShopApp(cfg, TxRepo, ItemRepo, PurchaseRepo, CreditsRepo, UserRepo, RedisRepo, publisher)
	CreditsApp := creditsapp.NewCreditsApp(cfg, CreditsRepo)
	ServersApp := serversapp.NewServersApp(ServerRepo, RedisRepo)
	ContentApp := contentapp.NewContentApp(ContentRepo)

	httpTransport := transport.NewTransport(AuthApp, ShopApp, CreditsApp, ServersApp, ContentApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
