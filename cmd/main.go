package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"llanero-admin-service/internal/config"
	"llanero-admin-service/internal/events"
	"llanero-admin-service/internal/handlers"
	"llanero-admin-service/internal/middleware"
	"llanero-admin-service/internal/repository"
)

// @title Llanero Admin API
// @version 1.0.0
// @description Admin dashboard backend for the Llanero delivery marketplace: catalog, orders, staff and storefront settings.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db, redisClient)
	ordersRepo := repository.NewOrdersRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize event publisher for the audit trail only if NATS_URL is set
	var eventsPublisher *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		eventsPublisher, err = events.NewPublisher(cfg.NatsURL, logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (continuing without event publishing)", err)
		} else {
			log.Println("✓ Events publisher initialized (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping event publishing initialization")
	}
	defer func() {
		if eventsPublisher != nil {
			eventsPublisher.Close()
		}
	}()

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("llanero")
	log.Println("✓ Prometheus metrics initialized")

	// Initialize handlers with event publisher (may be nil if NATS not configured)
	productsHandler := handlers.NewProductsHandler(catalogRepo, eventsPublisher)
	importHandler := handlers.NewImportHandler(catalogRepo, eventsPublisher, metrics, logger)
	categoriesHandler := handlers.NewCategoriesHandler(catalogRepo)
	ordersHandler := handlers.NewOrdersHandler(ordersRepo, staffRepo, eventsPublisher)
	staffHandler := handlers.NewStaffHandler(staffRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS())

	// Uploads are bounded so a runaway file cannot exhaust memory
	router.MaxMultipartMemory = cfg.MaxImportFileBytes

	// Health check endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)
	router.GET("/metrics", metrics.Handler())

	// Protected API routes
	api := router.Group("/api/v1")

	// In development: header-based auth for local testing
	// In production: JWT bearer tokens issued by the dashboard login
	if cfg.Environment == "development" {
		api.Use(middleware.DevelopmentAuthMiddleware())
	} else {
		api.Use(middleware.JWTAuth(cfg.JWTSecret))
	}

	v1 := api.Group("")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsHandler.GetProducts)
			products.GET("/:id", productsHandler.GetProduct)
			products.POST("", productsHandler.CreateProduct)
			products.PUT("/:id", productsHandler.UpdateProduct)
			products.DELETE("/:id", productsHandler.DeleteProduct)

			products.GET("/export", productsHandler.ExportProducts)
			products.GET("/import/template", importHandler.GetImportTemplate)
			products.POST("/import", importHandler.ImportProducts)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoriesHandler.GetCategories)
			categories.GET("/:id", categoriesHandler.GetCategory)
			categories.POST("", categoriesHandler.CreateCategory)
			categories.PUT("/:id", categoriesHandler.UpdateCategory)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
			categories.GET("/:id/subcategories", categoriesHandler.GetSubcategories)
		}

		subcategories := v1.Group("/subcategories")
		{
			subcategories.POST("", categoriesHandler.CreateSubcategory)
			subcategories.PUT("/:id", categoriesHandler.UpdateSubcategory)
			subcategories.DELETE("/:id", categoriesHandler.DeleteSubcategory)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", ordersHandler.GetOrders)
			orders.GET("/:id", ordersHandler.GetOrder)
			orders.PUT("/:id/status", ordersHandler.UpdateOrderStatus)
			orders.PUT("/:id/delivery", ordersHandler.AssignDelivery)
		}

		deliveryStaff := v1.Group("/delivery-staff")
		{
			deliveryStaff.GET("", staffHandler.GetDeliveryStaff)
			deliveryStaff.POST("", staffHandler.CreateDeliveryStaff)
			deliveryStaff.PUT("/:id", staffHandler.UpdateDeliveryStaff)
			deliveryStaff.DELETE("/:id", staffHandler.DeleteDeliveryStaff)
		}

		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", staffHandler.GetTeamMembers)
			teamMembers.POST("", staffHandler.CreateTeamMember)
			teamMembers.PUT("/:id", staffHandler.UpdateTeamMember)
			teamMembers.DELETE("/:id", staffHandler.DeleteTeamMember)
		}

		bodegones := v1.Group("/bodegones")
		{
			bodegones.GET("", settingsHandler.GetBodegones)
			bodegones.GET("/:id", settingsHandler.GetBodegon)
			bodegones.POST("", settingsHandler.CreateBodegon)
			bodegones.PUT("/:id", settingsHandler.UpdateBodegon)
			bodegones.DELETE("/:id", settingsHandler.DeleteBodegon)
		}

		paymentMethods := v1.Group("/payment-methods")
		{
			paymentMethods.GET("", settingsHandler.GetPaymentMethods)
			paymentMethods.POST("", settingsHandler.CreatePaymentMethod)
			paymentMethods.PUT("/:id", settingsHandler.UpdatePaymentMethod)
			paymentMethods.DELETE("/:id", settingsHandler.DeletePaymentMethod)
		}

		banners := v1.Group("/banners")
		{
			banners.GET("", settingsHandler.GetBanners)
			banners.POST("", settingsHandler.CreateBanner)
			banners.PUT("/:id", settingsHandler.UpdateBanner)
			banners.DELETE("/:id", settingsHandler.DeleteBanner)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Llanero admin service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	log.Println("Shutting down llanero-admin-service...")

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Llanero admin service stopped")
}
