package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/jeemhub/fawazv7/common/errors"
	"github.com/jeemhub/fawazv7/common/logger"
	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/config"
	"github.com/jeemhub/fawazv7/controllers"
	"github.com/jeemhub/fawazv7/database"
	"github.com/jeemhub/fawazv7/kafka"
	"github.com/jeemhub/fawazv7/pkg/objectstore"
	"github.com/jeemhub/fawazv7/repository"
	"github.com/jeemhub/fawazv7/routes"
	"github.com/jeemhub/fawazv7/services"
)

func main() {
	// Load environment configuration
	cfg := config.Load()

	// Initialize structured logger
	logger.Initialize(cfg.Environment)
	defer logger.Sync()
	log := logger.Log

	// Initialize Redis (session storage + catalog cache)
	redisClient := database.NewRedisClient(cfg.RedisURL)

	// Initialize MongoDB (catalog store)
	mongoClient, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	// Optional checkout event producer
	var publisher services.CheckoutPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.CheckoutTopic)
		defer producer.Close()
		publisher = producer
		log.Info("Checkout event producer enabled", zap.String("topic", cfg.CheckoutTopic))
	}

	// Optional image upload presigner
	var presigner controllers.ImagePresigner
	if cfg.PhotoBucket != "" {
		bucket, err := objectstore.New(context.Background(), objectstore.Options{
			Bucket:    cfg.PhotoBucket,
			Region:    cfg.AWSRegion,
			Endpoint:  cfg.AWSEndpoint,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			log.Warn("Image uploads disabled, object store unavailable", zap.Error(err))
		} else {
			presigner = bucket
		}
	}

	// Repositories
	cartRepo := repository.NewRedisCartRepository(redisClient, cfg.CartTTL)
	prefsRepo := repository.NewRedisPreferencesRepository(redisClient, cfg.CartTTL)
	productRepo := repository.NewMongoProductRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)

	// Services
	cartService := services.NewCartService(cartRepo, log)
	checkoutService := services.NewCheckoutService(cartService, prefsRepo, publisher, cfg, log)
	catalogService := services.NewCatalogService(productRepo, categoryRepo, cfg.FallbackImage, log)

	// Controllers
	cache := controllers.NewCacheManager(redisClient)
	catalogController := controllers.NewCatalogController(catalogService, cache)
	cartController := controllers.NewCartController(cartService, cfg.FallbackImage)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	sessionController := controllers.NewSessionController(prefsRepo)
	adminController := controllers.NewAdminController(catalogService, cache, presigner)

	// Router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(apperrors.ErrorMiddleware())

	routes.Register(router, catalogController, cartController, checkoutController, sessionController, adminController)

	// Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Storefront service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", zap.Error(err))
	}
	log.Info("Server shutdown complete")
}
