package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pipeshare/config"
	"pipeshare/di"
	middleware_custom "pipeshare/middleware"
	"pipeshare/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request IDs first so every later stage can log them.
	e.Use(middleware_custom.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", "Authorization", "X-Requested-With"},
		MaxAge:       86400,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			// Streaming endpoints hold their connection open.
			return strings.Contains(c.Path(), "/events/stream")
		},
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.Contains(c.Path(), "/events/stream")
		},
	}))

	e.GET("/v1/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := middleware_custom.NewJWTAuthMiddleware(logger.Logger, cfg)
	v1 := e.Group("/v1", auth.RequireJWT())

	registerPipelineRoutes(v1, container, cfg)
	registerSharingRoutes(v1, container, cfg)
	registerSSERoutes(v1, container, cfg)
}
