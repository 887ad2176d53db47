// Package router assembles the Gin engine from the application's modules.
package router

import (
	nethttp "net/http"
	"os"
	"strings"
	"time"

	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// New builds the HTTP engine: global middleware, CORS, health endpoints,
// the /api/v1 and /api/v1/admin groups, then each module's routes.
func New(app *apphttp.App) *gin.Engine {
	if !strings.EqualFold(envName(), "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, nethttp.StatusNotFound, "route not found", nil)
	})
	engine.NoMethod(func(c *gin.Context) {
		httpkit.Error(c, nethttp.StatusMethodNotAllowed, "method not allowed", nil)
	})

	registerHealth(engine, app)

	v1 := engine.Group("/api/v1")
	admin := v1.Group("/admin")
	admin.Use(app.AuthMiddleware)
	admin.Use(httpkit.RequireRole("admin", "super_admin"))

	ctx := &apphttp.RouterContext{
		Engine:         engine,
		V1:             v1,
		Admin:          admin,
		Config:         app.Config,
		AuthMiddleware: app.AuthMiddleware,
		SuperAdminOnly: httpkit.RequireRole("super_admin"),
		Limiters:       app.Limiters,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func registerHealth(engine *gin.Engine, app *apphttp.App) {
	health := func(c *gin.Context) {
		httpkit.OK(c, gin.H{
			"status":        "ok",
			"environment":   envName(),
			"version":       app.Version,
			"uptimeSeconds": int64(time.Since(startedAt).Seconds()),
		})
	}
	ping := func(c *gin.Context) {
		c.String(nethttp.StatusOK, "pong")
	}
	ready := func(c *gin.Context) {
		if err := app.Health.Ping(c.Request.Context()); err != nil {
			httpkit.Error(c, nethttp.StatusServiceUnavailable, "database unreachable", nil)
			return
		}
		httpkit.OKMessage(c, "ready")
	}

	engine.GET("/api/v1/health", health)
	engine.GET("/api/v1/health/ping", ping)
	engine.GET("/api/v1/health/ready", ready)
}

func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if app.Config.GetCORSAllowAll() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = app.Config.GetCORSOrigins()
	}
	corsConfig.AllowCredentials = app.Config.GetCORSAllowCreds()
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(corsConfig)
}

func envName() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
