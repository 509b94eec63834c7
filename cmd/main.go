package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	activityapp "github.com/owuwix/wiishy/application/activity"
	authapp "github.com/owuwix/wiishy/application/auth"
	recommendationapp "github.com/owuwix/wiishy/application/recommendation"
	wishlistapp "github.com/owuwix/wiishy/application/wishlist"
	"github.com/owuwix/wiishy/cmd/config"
	redisclient "github.com/owuwix/wiishy/cmd/redis"
	_ "github.com/owuwix/wiishy/docs"
	catalogRepo "github.com/owuwix/wiishy/repository/catalog"
	redisRepo "github.com/owuwix/wiishy/repository/redis"
	userRepo "github.com/owuwix/wiishy/repository/user"
	wishlistRepo "github.com/owuwix/wiishy/repository/wishlist"
	"github.com/owuwix/wiishy/thirdparty/rabbitmq"
	"github.com/owuwix/wiishy/transport"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
)

// @title WIISHY API
// @version 1.0
// @description Wishlist management API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "api"); err != nil {
		// fallback to standard log if zap init fails
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

	// Connect to RabbitMQ; mutations still work without the feed
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, activity feed disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	WishlistRepo := wishlistRepo.NewWishlistRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository()
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo)
	WishlistApp := wishlistapp.NewWishlistApp(WishlistRepo, publisher)
	RecommendationApp := recommendationapp.NewRecommendationApp(CatalogRepo)
	ActivityApp := activityapp.NewActivityApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(AuthApp, WishlistApp, RecommendationApp, ActivityApp, cfg.Internal.APIKey)

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
