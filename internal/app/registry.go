package app

import (
	"go-guardconsole/internal/auth"
	"go-guardconsole/internal/cacheadmin"
	"go-guardconsole/internal/config"
	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/defaults"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/incident"
	"go-guardconsole/internal/metrics"
	"go-guardconsole/internal/middleware"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/rbac"
	rbacinfra "go-guardconsole/internal/rbac/infra"
	"go-guardconsole/internal/task"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type modules struct {
	cfg        config.Config
	store      credential.Store
	authAPI    *httpclient.Client
	coreAPI    *httpclient.Client
	queries    *query.Client
	cacheAdmin cacheadmin.Service
	logger     *zap.Logger
}

func registerModules(router *gin.Engine, m modules) error {
	// --- RBAC Core ---
	enforcer, err := rbacinfra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, m.logger)

	// --- Repositories ---
	authRepo := auth.NewRepository(m.authAPI)
	defaultsRepo := defaults.NewRepository(m.coreAPI)
	metricsRepo := metrics.NewRepository(m.coreAPI)
	taskRepo := task.NewRepository(m.coreAPI)
	incidentRepo := incident.NewRepository(m.coreAPI)

	// --- Services ---
	authService := auth.NewService(authRepo, m.store, m.logger)
	defaultsService := defaults.NewService(defaultsRepo, m.queries, m.logger)
	metricsService := metrics.NewService(metricsRepo, m.queries, m.logger)
	taskService := task.NewService(taskRepo, m.queries, m.logger)
	incidentService := incident.NewService(incidentRepo, m.queries, m.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, m.cfg.SecureCookie)
	defaultsHandler := defaults.NewHandler(defaultsService)
	metricsHandler := metrics.NewHandler(metricsService)
	taskHandler := task.NewHandler(taskService)
	incidentHandler := incident.NewHandler(incidentService)
	rbacHandler := rbac.NewHandler(rbacService)
	cacheHandler := cacheadmin.NewHandler(m.cacheAdmin)

	// --- Middleware ---
	if err := router.SetTrustedProxies(m.cfg.TrustedProxies); err != nil {
		return err
	}
	router.Use(
		middleware.Session(),
		middleware.ContextLogger(m.logger),
		middleware.RateLimitByIP(rate.Limit(m.cfg.IPRateLimitRPS), m.cfg.IPRateLimitBurst),
	)
	userLimiter := middleware.NewKeyedRateLimiter(rate.Limit(m.cfg.RateLimitRPS), m.cfg.RateLimitBurst)
	requireSession := middleware.SessionAuth(m.store, m.cfg.JWTSecret, middleware.WithUserRateLimit(userLimiter))
	loginLimiter := middleware.RateLimitByIP(rate.Limit(m.cfg.LoginRateRPS), m.cfg.LoginRateBurst)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, requireSession, loginLimiter)
		defaults.RegisterRoutes(api, defaultsHandler, rbacService, requireSession)
		metrics.RegisterRoutes(api, metricsHandler, rbacService, requireSession)
		task.RegisterRoutes(api, taskHandler, rbacService, requireSession)
		incident.RegisterRoutes(api, incidentHandler, rbacService, requireSession)
		rbac.RegisterRoutes(api, rbacHandler, requireSession)
		cacheadmin.RegisterRoutes(api, cacheHandler, rbacService, requireSession)
	}

	return nil
}
