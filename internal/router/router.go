package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/task-tracker/internal/config"
	"github.com/iliyamo/task-tracker/internal/handler"
	"github.com/iliyamo/task-tracker/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the auth and task endpoints. Registration and login live
// under /api/auth and are open; everything under /api/tasks runs behind the
// bearer-token middleware, with the per-user response cache layered on top so
// repeated reads within the TTL skip the database.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, t *handler.TaskHandler, cfg config.Config, cacheCfg config.CacheConfig, rdb *redis.Client) {
	auth := e.Group("/api/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)

	tasks := e.Group("/api/tasks")
	tasks.Use(middleware.Auth(cfg.JWTSecret))
	tasks.Use(middleware.UserCache(cacheCfg, rdb))
	tasks.POST("", t.Create)
	tasks.GET("", t.List)
	tasks.GET("/:id", t.Get)
	tasks.PUT("/:id", t.Update)
	tasks.DELETE("/:id", t.Delete)
}
