package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"framework4future/portal/internal/api"
	"framework4future/portal/internal/common"
	"framework4future/portal/internal/config"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/routes"
	"framework4future/portal/internal/workers"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Framework 4 Future Portal API
// @version 1.0
// @description Backend for the Framework 4 Future website and member portal.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Portal starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)
	logging.Debug("Loaded configuration", "config", cfg.String())

	if cfg.Auth.JWTSecret == "" && (cfg.AppEnv == "production" || cfg.Store.PublicConfigured() || cfg.Store.ServiceConfigured()) {
		logging.Fatal("JWT_SECRET must be set in production or when a live store is configured")
	}

	live := db.Connect(cfg.Store)
	defer live.Close()
	if live.Configured() {
		logging.Info("Live store configured")
	} else {
		logging.Warn("Live store not configured, serving the in-memory fallback store")
	}

	var cache common.CacheInterface
	if cfg.Redis.Enabled() {
		redisCache := common.NewRedisCacheService(common.NewRedisClient(cfg.Redis))
		defer redisCache.Close()
		cache = redisCache
		logging.Info("Using Redis cache", "addr", cfg.Redis.Addr)
	} else {
		cache = common.NewCacheService(600, 60)
		logging.Info("Using in-memory cache")
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	deps := api.InitDependencies(cfg, live, fallback.New(), cache, metricsReg)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.InitWorkers(workerCtx, live, deps.Services.Blogs, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, metricsReg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "addr", cfg.Server.Addr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Info("Shutting down server")
	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
}
