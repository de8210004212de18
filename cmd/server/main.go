package main

import (
	"context"
	"log"

	"github.com/MTahaFarrukh/PortBuilder/adapters/event"
	httpAdapter "github.com/MTahaFarrukh/PortBuilder/adapters/http"
	"github.com/MTahaFarrukh/PortBuilder/adapters/media_storage"
	"github.com/MTahaFarrukh/PortBuilder/adapters/persistence"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/render"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/config"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
	"github.com/MTahaFarrukh/PortBuilder/pkg/auth"
	"github.com/MTahaFarrukh/PortBuilder/pkg/identifier"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
	"github.com/MTahaFarrukh/PortBuilder/pkg/tracing"
)

func main() {
	log.Println("Start PortBuilder API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portbuilder-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	cachedRepo := persistence.NewCachedProfileRepo(profileRepo, redisClient, cfg.Redis.CacheTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	idGen := identifier.NewUUIDGenerator()
	catalog := template.DefaultCatalog()
	renderer := render.NewRenderer(catalog)
	stores := store.NewManager(cachedRepo, idGen, appLogger, store.WithPublisher(kafkaClient))

	// HTTP Handlers
	portfolioHandler := httpAdapter.NewPortfolioHandler(stores, appLogger)
	templateHandler := httpAdapter.NewTemplateHandler(catalog)
	renderHandler := httpAdapter.NewRenderHandler(stores, cachedRepo, renderer, redisClient, appLogger)

	var avatarHandler *httpAdapter.AvatarHandler
	if cfg.Cloudinary.CloudName != "" {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
		avatarHandler = httpAdapter.NewAvatarHandler(stores, uploader, appLogger)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Portfolio: portfolioHandler,
		Templates: templateHandler,
		Render:    renderHandler,
		Avatar:    avatarHandler,
		AuthMW:    httpAdapter.AuthMiddleware(jwtSvc),
		Logger:    appLogger,
	})

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
