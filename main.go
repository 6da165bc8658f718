package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eazywed/config"
	"eazywed/cron"
	"eazywed/database"
	"eazywed/database/repository"
	"eazywed/handlers"
	"eazywed/metrics"
	"eazywed/middleware"
	"eazywed/routes"
	"eazywed/services/catalog"
	"eazywed/services/dashboard"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.Database()
	cache := utils.GetCacheClient()
	metrics.Register()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logger.Sugar().Fatalf("main: failed to create indexes: %v", err)
	}

	// repositories.
	estimations := repository.NewMongoEstimationRepo(db)
	bookings := repository.NewMongoBookingRepo(db)
	reviews := repository.NewMongoReviewRepo(db)
	catalogRepo := repository.NewMongoCatalogRepo(db)

	// services.
	dashboardService := &dashboard.DefaultDashboardService{
		Estimations:  estimations,
		Bookings:     bookings,
		Reviews:      reviews,
		Catalog:      catalogRepo,
		Stats:        dashboard.NewRedisStatsCache(cache, config.AppConfig.StatsCacheTTL),
		Logger:       logger.Named("dashboard"),
		DefaultLimit: config.AppConfig.DefaultPageLimit,
		MaxLimit:     config.AppConfig.MaxPageLimit,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catalogRepo,
		Redis:  cache,
		Logger: logger.Named("catalog"),
	}

	worker, err := cron.InitCompletionWorker(dashboardService, logger.Named("worker"))
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	utils.StartHealthMonitor(ctx, 30*time.Second, map[string]utils.HealthCheck{
		"mongo": func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
		"redis": func(ctx context.Context) error { return cache.Ping(ctx).Err() },
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("http"), config.AppConfig.LogBodyLimit))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewCatalogHandler(catalogService),
	)
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := cache.Close(); err != nil {
		logger.Warn("main: failed to close redis", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
