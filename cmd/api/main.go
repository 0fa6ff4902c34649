package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/cache"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/database"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/search"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/handlers"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/middleware"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/routes"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/providers"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/redis"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/typesense"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/observability"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without caching.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized")
	}

	// Initialize Typesense client. Catalog search falls back to SQL without it.
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Typesense client, search falls back to database")
		typesenseClient = nil
	} else {
		logger.Info().Msg("Typesense client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters

	baseCatalogAdapter := database.NewCatalogAdapter(pgClient)

	// Wrap with caching if Redis is available
	var catalogRepo repositories.CatalogRepository
	if cacheProvider != nil {
		catalogRepo = database.NewCachedCatalogAdapter(baseCatalogAdapter, cacheProvider)
		logger.Info().Msg("catalog adapter wrapped with caching layer")
	} else {
		catalogRepo = baseCatalogAdapter
		logger.Warn().Msg("catalog adapter running without cache (Redis unavailable)")
	}

	billAdapter := database.NewBillAdapter(pgClient)
	complaintAdapter := database.NewComplaintAdapter(pgClient)
	statsAdapter := database.NewStatsAdapter(pgClient)

	var searchRepo repositories.CatalogSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)

		// Ensure schema exists
		if err := adapter.InitSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to init Typesense schema")
		} else {
			searchRepo = adapter
		}
	}

	// Initialize services

	catalogService := services.NewCatalogService(catalogRepo, searchRepo)
	billService := services.NewBillService(catalogService, billAdapter, metrics)
	complaintService := services.NewComplaintService(complaintAdapter)
	statsService := services.NewStatsService(statsAdapter)

	// Initialize handlers

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	billHandler := handlers.NewBillHandler(billService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		catalogHandler,
		billHandler,
		complaintHandler,
		statsHandler,
		cacheMiddleware,
		metrics,
		cfg.Server.AllowedOrigins,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
