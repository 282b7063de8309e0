package main

import (
	"context"
	"fmt"

	"notification-enricher/config"
	"notification-enricher/config/minio"
	"notification-enricher/config/postgre"
	configRedis "notification-enricher/config/redis"
	directoryUC "notification-enricher/internal/directory/usecase"
	enrichUC "notification-enricher/internal/enrich/usecase"
	"notification-enricher/internal/httpserver"
	"notification-enricher/internal/middleware"
	"notification-enricher/internal/registry"
	"notification-enricher/internal/report"
	"notification-enricher/pkg/jwt"
	"notification-enricher/pkg/log"

	"notification-enricher/internal/directory/repository/httpapi"
	directoryPostgres "notification-enricher/internal/directory/repository/postgre"
	"notification-enricher/internal/directory/repository/redicache"
)

// @Name Notification Enricher API
// @description Classifies and enriches raw notification subscription records.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize MinIO. The artifact store is optional: scheduled records
	// then keep a zero artifact count.
	var artifacts report.ArtifactStore
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := minio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		artifacts = report.NewArtifactStore(logger, minioClient, cfg.MinIO.ArtifactBucket)
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Initialize JWT validator
	validator, err := jwt.NewValidator(jwt.Config{SecretKey: cfg.JWT.SecretKey})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT validator: ", err)
		return
	}

	// Directory repositories: users and accounts come from the local
	// identity replica, integrations and playbooks from their services.
	// All four are cached in Redis.
	ttl := cfg.Directory.CacheTTL
	users := redicache.New(logger, directoryPostgres.NewUserDirectory(logger, postgresDB), redisClient, "users", ttl)
	accounts := redicache.New(logger, directoryPostgres.NewAccountDirectory(logger, postgresDB), redisClient, "accounts", ttl)
	integrations := redicache.New(logger, httpapi.New(logger, httpapi.Config{
		BaseURL: cfg.Directory.IntegrationsURL,
		Path:    "/v1/connections/names",
	}), redisClient, "integrations", ttl)
	playbooks := redicache.New(logger, httpapi.New(logger, httpapi.Config{
		BaseURL: cfg.Directory.PlaybooksURL,
		Path:    "/v1/playbooks/names",
	}), redisClient, "playbooks", ttl)

	resolver := directoryUC.New(logger, directoryUC.Repositories{
		Accounts:     accounts,
		Users:        users,
		Integrations: integrations,
		Playbooks:    playbooks,
	}, cfg.Directory.LookupTimeout)

	// Reporting catalog is optional too.
	var catalog report.Catalog
	if cfg.Report.CatalogURL != "" {
		catalog = report.NewCatalog(logger, report.CatalogConfig{BaseURL: cfg.Report.CatalogURL})
	}

	// Enrichment engine
	uc := enrichUC.New(logger, registry.New(), resolver, catalog, artifacts)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Environment: cfg.Server.Mode,

		EnrichUC: uc,

		Middleware: middleware.New(logger, validator),

		Redis: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
