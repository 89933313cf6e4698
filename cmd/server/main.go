package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/avatarctic/admin-dashboard/configs"
	"github.com/avatarctic/admin-dashboard/internal/application/query"
	"github.com/avatarctic/admin-dashboard/internal/application/services"
	"github.com/avatarctic/admin-dashboard/internal/application/store"
	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/cache"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/dummyjson"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/health"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver"
	infraRedis "github.com/avatarctic/admin-dashboard/internal/infrastructure/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting admin dashboard service...")

	// Upstream client shared by both resource stores and the auth service
	upstream := dummyjson.NewClient(&cfg.Upstream, logger)
	userClient := dummyjson.NewUserClient(upstream)
	productClient := dummyjson.NewProductClient(upstream)

	healthCheckers := []ports.HealthChecker{health.NewUpstreamHealthChecker(upstream)}

	// Query caches, one per resource store
	var usersCache, productsCache ports.QueryCache
	if cfg.Cache.Backend == "redis" {
		redisClient, err := infraRedis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()

		logger.Info("Connected to Redis successfully")

		usersCache = infraRedis.NewQueryCache(redisClient, cfg.Cache.KeyPrefix+":users")
		productsCache = infraRedis.NewQueryCache(redisClient, cfg.Cache.KeyPrefix+":products")
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
	} else {
		usersCache = cache.NewMemory()
		productsCache = cache.NewMemory()
	}

	// Resource stores
	usersStore := store.NewUsers(userClient, usersCache, cfg.Cache.TTL, cfg.Query.DefaultLimit, logger)
	productsStore := store.NewProducts(productClient, productsCache, cfg.Cache.TTL, cfg.Query.DefaultLimit, logger)

	// View-facing query controllers; search input is debounced here
	usersQuery := query.NewUsers(usersStore, cfg.Query.SearchDebounce, cfg.Query.DefaultLimit, logger)
	productsQuery := query.NewProducts(productsStore, cfg.Query.SearchDebounce, cfg.Query.DefaultLimit, logger)

	// Warm the first page and the category list. The dashboard renders from
	// snapshots, so a failed warmup only delays first paint.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := usersQuery.Init(warmCtx); err != nil {
			logger.WithError(err).Warn("user store warmup failed")
		}
		if err := productsQuery.Init(warmCtx); err != nil {
			logger.WithError(err).Warn("product store warmup failed")
		}
	}()

	authService := services.NewAuthService(upstream, &cfg.JWT, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		AuthService:    authService,
		Users:          usersStore,
		Products:       productsStore,
		UserQuery:      usersQuery,
		ProductQuery:   productsQuery,
		HealthCheckers: healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
