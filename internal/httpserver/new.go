package httpserver

import (
	"errors"

	"notification-enricher/internal/enrich"
	"notification-enricher/internal/middleware"
	pkgLog "notification-enricher/pkg/log"
	pkgRedis "notification-enricher/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) starts HTTP serving and blocks until shutdown.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      pkgLog.Logger
	port        int
	environment string

	// Enrichment core
	enrichUC enrich.UseCase

	// Auth & security
	mw middleware.Middleware

	// External services
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Enrichment core
	EnrichUC enrich.UseCase

	// Auth & security
	Middleware middleware.Middleware

	// External services
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		gin:         gin.Default(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		enrichUC: cfg.EnrichUC,

		mw: cfg.Middleware,

		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.enrichUC == nil {
		return errors.New("enrichment usecase is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}

	return nil
}
