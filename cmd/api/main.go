package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"pokedex/docs"
	"pokedex/internal/cache"
	"pokedex/internal/config"
	"pokedex/internal/database"
	"pokedex/internal/database/migration"
	handlers "pokedex/internal/http/handler"
	"pokedex/internal/http/middleware"
	"pokedex/internal/logging"
	"pokedex/internal/otel"
	"pokedex/internal/repository/postgres"
	"pokedex/internal/service"
	"pokedex/internal/storage"
)

// @title Pokédex API
// @version 1.0
// @description Catalog, Living Dex, missions, shop and teams for the Pokédex collection game.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logging.New(os.Stdout, cfg.Location())
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "failed to initialize tracing", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		fatal(log, "failed to connect to database", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		fatal(log, "failed to migrate database", err)
	}

	// Redis is optional: without it the catalog is cached per process and nobody is throttled
	var (
		catalogCache service.CatalogCache
		limiter      middleware.Limiter
	)
	if cfg.Redis.URL != "" {
		rc, err := cache.New(ctx, cfg.Redis.URL)
		if err != nil {
			fatal(log, "failed to connect to redis", err)
		}
		defer rc.Close()
		catalogCache = cache.NewCatalogCache(rc, cfg.Redis.CatalogTTL)
		if cfg.RateLimit.Enabled {
			limiter = cache.NewRateLimiter(rc, cfg.RateLimit.RequestsPerMinute)
		}
	}

	// Shop artwork lives in S3-compatible object storage (MinIO-supported)
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "failed to initialize object storage", err)
		}
	}

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "failed to register metrics", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "failed to register http metrics", err)
	}

	// Initialize repositories and services
	speciesRepo := postgres.NewSpeciesPostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)
	dexRepo := postgres.NewDexPostgres(db)
	missionRepo := postgres.NewMissionPostgres(db)
	shopRepo := postgres.NewShopPostgres(db)
	teamRepo := postgres.NewTeamPostgres(db)

	missionSvc := service.NewMissionService(missionRepo, metrics)
	svc := handlers.Services{
		Catalog:  service.NewCatalogService(speciesRepo, dexRepo, catalogCache, cfg.Redis.CatalogTTL),
		Profiles: service.NewProfileService(profileRepo, dexRepo, missionRepo, teamRepo, shopRepo, cfg.Game.StartingGold),
		Dex:      service.NewDexService(dexRepo, missionSvc, metrics),
		Missions: missionSvc,
		Shop:     service.NewShopService(shopRepo, profileRepo, objStore, cfg.MinIO.PresignTTL, missionSvc, metrics),
		Teams:    service.NewTeamService(teamRepo, cfg.Game.MaxTeamsPerUser, missionSvc, metrics),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Recover keeps one panicking request from taking the process down
	app.Use(middleware.Recover(log))
	// Tracing runs before the logger so request logs carry trace_id
	app.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(httpMetrics.Handler())
	if limiter != nil {
		app.Use(middleware.OptionalUser(), middleware.RateLimit(limiter))
	}

	app.Get("/metrics", middleware.MetricsHandler(prometheus.DefaultGatherer))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down", nil)
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("shutdown failed", err, nil)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", map[string]any{"addr": addr, "public_host": cfg.AppHost})

	if err := app.Listen(addr); err != nil {
		fatal(log, "failed to start server", err)
	}
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, err, nil)
	os.Exit(1)
}
