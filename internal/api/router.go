package api

import (
	"fmt"

	"featureboard/internal/config"
	"featureboard/internal/metrics"
	"featureboard/internal/middleware"
	"featureboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(featureHandler *FeatureHandler, consoleHandler *ConsoleHandler, rdb *redis.Client, cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Global Middleware
	r.Use(
		middleware.CorsMiddleware(cfg.Server.CorsOrigins),
		middleware.RequestID(),
		middleware.GinZapLogger(),
		middleware.GinZapRecovery(),
		middleware.HttpMiddleware(),
	)
	r.SetTrustedProxies(nil)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	// Rate Limiter for Write Operations
	writeLimiter := middleware.RateLimitMiddleware(rdb, middleware.RateLimiterConfig{
		Limit: cfg.RateLimit.RequestsPerSecond,
		Burst: cfg.RateLimit.Burst,
	})

	// Public Routes
	r.GET("/health", featureHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Console
	r.GET("/", consoleHandler.Index)
	r.GET("/features/new", consoleHandler.NewForm)
	r.POST("/features/new", writeLimiter, consoleHandler.Create)
	r.GET("/features/:id", consoleHandler.View)
	r.GET("/features/:id/edit", consoleHandler.EditForm)
	r.POST("/features/:id/edit", writeLimiter, consoleHandler.Edit)
	r.GET("/features/:id/delete", consoleHandler.DeleteForm)
	r.POST("/features/:id/delete", writeLimiter, consoleHandler.Delete)

	// JSON API
	v1 := r.Group("/v1")
	{
		v1.GET("/features", featureHandler.ListFeatures)
		v1.GET("/options", featureHandler.ListOptions)
		v1.POST("/features", writeLimiter, featureHandler.CreateFeature)
		v1.GET("/features/:id", featureHandler.GetFeature)
		v1.PUT("/features/:id", writeLimiter, featureHandler.UpdateFeature)
		v1.DELETE("/features/:id", writeLimiter, featureHandler.DeleteFeature)
	}
	return r, nil
}
