package httpserver

import (
	"notification-enricher/internal/middleware"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "notification-enricher/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	// Apply global middleware
	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Recovery(srv.logger))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := srv.gin.Group(Api)
	api.Use(srv.mw.Auth())

	api.POST("/notifications/enrich", srv.enrichOne)
	api.POST("/notifications/enrich-batch", srv.enrichBatch)
	api.GET("/notification-types", srv.notificationTypes)

	return nil
}
