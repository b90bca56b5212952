package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/natnat/flowershop_content_microservice/docs"
	handlers "github.com/natnat/flowershop_content_microservice/internal/adapter/handler/http"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/logger"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/memory"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/prometheus"
	redis "github.com/natnat/flowershop_content_microservice/internal/adapter/redis"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/sheets"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/sqlite"
	"github.com/natnat/flowershop_content_microservice/internal/config"
	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"
	"github.com/natnat/flowershop_content_microservice/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	promclient "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

// @title Flower Shop Content API
// @version 1.0
// @description Editable storefront content backed by a spreadsheet, with a two-tier cache

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	ctx := context.Background()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(promclient.DefaultRegisterer, cfg.App.Name)

	// Cache tiers
	memoryTier := memory.New()
	durableTier, closeDurable := openDurableTier(ctx, cfg, loggerAdapter)
	defer closeDurable()

	// Content
	sheetsClient := sheets.NewClient(cfg.Sheets.URL, cfg.Sheets.Timeout)
	contentService := services.NewContentService(
		sheetsClient,
		memoryTier,
		durableTier,
		loggerAdapter,
		metrics,
		services.ContentConfig{
			UseAPI: cfg.Sheets.UseAPI,
			TTL:    cfg.Cache.TTL(),
		},
	)
	if !contentService.Enabled() {
		loggerAdapter.Warn("Sheets API is disabled or URL not configured, serving bundled content", nil)
	}

	validate := validator.New()
	catalog := services.NewCatalog(contentService, validate, loggerAdapter)
	go func() {
		_ = catalog.Refresh(ctx)
	}()

	// Operators
	tokenService := handlers.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	authService := services.NewAuthService(operatorsFromConfig(cfg.Admin), tokenService, loggerAdapter)

	contentHandler := handlers.NewContentHandler(contentService, catalog, cfg.Cache.Backend, loggerAdapter, metrics)
	authHandler := handlers.NewAuthHandler(authService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewRouter(
		cfg.HTTP,
		tokenService,
		contentHandler,
		authHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Application stopped", nil)
}

// openDurableTier returns the configured durable cache tier, or nil when the
// backend is "none". The returned func releases it.
func openDurableTier(ctx context.Context, cfg *config.Container, log ports.LoggerPort) (ports.CachePort, func()) {
	switch cfg.Cache.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o755); err != nil {
			log.Error("Failed to create sqlite directory", map[string]interface{}{
				"path":  cfg.SQLite.Path,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		store, err := sqlite.Open(cfg.SQLite.Path, cfg.SQLite.MigrationsDir, cfg.Cache.KeyPrefix)
		if err != nil {
			log.Error("Failed to open sqlite cache", map[string]interface{}{
				"path":  cfg.SQLite.Path,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		log.Info("Durable cache: sqlite", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return store, func() { _ = store.Close() }

	case config.BackendRedis:
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			log.Error("Failed to connect to Redis", map[string]interface{}{
				"addr":  cfg.Redis.Address,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		log.Info("Durable cache: redis", map[string]interface{}{
			"addr": cfg.Redis.Address,
		})
		return redis.NewRedisAdapter(redisConn, cfg.Cache.KeyPrefix), func() { _ = redisConn.Close() }

	default:
		log.Info("Durable cache disabled", nil)
		return nil, func() {}
	}
}

func operatorsFromConfig(admin *config.Admin) []domain.Operator {
	if admin.Email == "" || admin.PasswordHash == "" {
		return nil
	}
	return []domain.Operator{{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(admin.Email))),
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Role:         domain.Admin,
	}}
}
