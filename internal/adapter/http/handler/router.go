package handler

import (
	"tagpay/internal/adapter/http/middleware"
	redisStore "tagpay/internal/adapter/storage/redis"
	"tagpay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	LedgerSvc      ports.LedgerService
	TokenSvc       ports.TokenService
	OperatorID     string
	OperatorSecret string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis when wired)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc, deps.OperatorID, deps.OperatorSecret)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes (terminal operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	tagHandler := NewTagHandler(deps.SessionSvc)
	ledgerHandler := NewLedgerHandler(deps.SessionSvc, deps.LedgerSvc)

	tags := v1.Group("/tags", jwtAuth)
	{
		tags.POST("/scan", rl("tags_scan"), tagHandler.Scan)
		tags.POST("/initialize", rl("tags_init"), tagHandler.Initialize)
		tags.POST("/charge", rl("tags_pay"), tagHandler.Charge)
		tags.POST("/load", rl("tags_pay"), tagHandler.Load)
	}

	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.GET("/transactions", rl("ledger"), ledgerHandler.ListTransactions)
		ledger.PUT("/connectivity", rl("ledger"), ledgerHandler.SetConnectivity)
		ledger.POST("/sync", rl("ledger"), ledgerHandler.Sync)
		ledger.POST("/transactions/:id/fail", rl("ledger"), ledgerHandler.Fail)
	}

	return r
}
