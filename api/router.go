package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/vitals/api/handler"
	"github.com/use-agent/vitals/api/middleware"
	"github.com/use-agent/vitals/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → RequestID → Logger
//	Analyze: Auth (if enabled)
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(fetcher handler.ReportFetcher, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())

	api := r.Group("/api")

	api.GET("/health", handler.Health(cfg.Provider, startTime))

	protected := api.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.POST("/analyze", handler.Analyze(fetcher))

	return r
}
