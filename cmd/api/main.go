package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tagpay/config"
	httpHandler "tagpay/internal/adapter/http/handler"
	"tagpay/internal/adapter/storage/memory"
	pgStorage "tagpay/internal/adapter/storage/postgres"
	redisStorage "tagpay/internal/adapter/storage/redis"
	"tagpay/internal/core/ports"
	"tagpay/internal/service"
	"tagpay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("bridge", cfg.Bridge.Mode).
		Str("ledger", cfg.Ledger.Driver).
		Msg("Starting tagpay terminal")

	ctx := context.Background()

	// On-token codec, optionally MAC-protected
	var signer ports.IntegritySigner
	if cfg.Integrity.Key != "" {
		signer, err = service.NewHMACIntegritySigner(cfg.Integrity.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize integrity signer")
		}
		log.Info().Msg("Payload integrity protection enabled")
	} else {
		log.Warn().Msg("Integrity key not set, writing legacy unsigned payloads")
	}
	codec := service.NewJSONTagCodec(signer)

	var healthCheckers []ports.HealthChecker

	// Redis backs the reader bridge, PIN lockout and rate limiting.
	// The memory bridge is a dev mode and runs without it.
	var rateLimitStore *redisStorage.RateLimitStore
	var attempts ports.PinAttemptStore
	var tags ports.TagStore

	if cfg.Bridge.Mode == "redis" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		tags = redisStorage.NewTagBridge(rdb, codec, cfg.Bridge.ReaderID, log)
		attempts = redisStorage.NewPinAttemptStore(rdb, cfg.Pin.MaxFailures, cfg.Pin.Window, cfg.Pin.Lockout)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Memory bridge selected, using emulated token (dev only)")
		tags = memory.NewTagStore(codec)
	}

	// Ledger backend
	var ledgerStore ports.LedgerStore
	if cfg.Ledger.Driver == "postgres" {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		ledgerStore = pgStorage.NewLedgerRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	} else {
		log.Warn().Msg("Memory ledger selected, entries do not survive restarts")
		ledgerStore = memory.NewLedgerStore()
	}

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	engine := service.NewEngine(service.SystemClock{}, service.UUIDGenerator{}, service.NewArgon2PinHasher())
	ledgerSvc := service.NewLedger(ledgerStore, cfg.Ledger.AllowFailed, log)
	sessionSvc := service.NewSession(tags, engine, ledgerSvc, attempts, service.SystemClock{}, log)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		LedgerSvc:      ledgerSvc,
		TokenSvc:       tokenSvc,
		OperatorID:     cfg.Operator.ID,
		OperatorSecret: cfg.Operator.Secret,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
