package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"marketplace-service/internal/handler"
	mid "marketplace-service/internal/middleware"
	"marketplace-service/internal/model"
	"marketplace-service/internal/store"
	"marketplace-service/pkg/config"
	"marketplace-service/pkg/database"
	"marketplace-service/pkg/logger"
	"marketplace-service/prometheus"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load("marketplace-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting marketplace-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	err = database.MigrateModels(db,
		&model.Merchant{},
		&model.Item{},
		&model.Customer{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Transaction{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Stores and handlers
	merchantHandler := handler.NewMerchantHandler(store.NewMerchantStore(db))
	itemHandler := handler.NewItemHandler(store.NewItemStore(db))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes
	handler.RegisterRoutes(e, merchantHandler, itemHandler)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
