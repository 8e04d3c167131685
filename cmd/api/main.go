package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealflow/internal/config"
	"dealflow/internal/database"
	"dealflow/internal/handlers"
	"dealflow/internal/logger"
	"dealflow/internal/metrics"
	"dealflow/internal/middleware"
	"dealflow/internal/services"
	"dealflow/internal/validator"

	_ "dealflow/internal/docs" // Import swagger docs
)

// @title           Dealflow API
// @version         1.0
// @description     Dealflow is a backend for investment offerings: deals, their categories, and per-deal detail records.

/// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize metrics against the default registry
	dealMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Initialize services
	db := dbManager.DB()
	detailService := services.NewDealDetailService(db)
	dealService := services.NewDealService(db, detailService, dealMetrics)
	categoryService := services.NewCategoryService(db, dealMetrics)

	// Initialize handlers
	dealHandler := handlers.NewDealHandler(dealService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	detailHandler := handlers.NewDealDetailHandler(detailService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics(dealMetrics))
	router.Use(cors.Default())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Root and health check endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Dealflow API", "docs": "/swagger/index.html"})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Deal routes
	deals := v1.Group("/deals")
	deals.POST("", dealHandler.CreateDeal)
	deals.GET("", dealHandler.GetActiveDeals)
	deals.GET("/:id", dealHandler.GetDealByID)
	deals.PATCH("/:id", dealHandler.UpdateDeal)
	deals.DELETE("/:id", dealHandler.DeleteDeal)
	deals.GET("/category/:categoryName", dealHandler.GetDealsByCategory)
	deals.GET("/:id/detail", detailHandler.GetDealDetail)
	deals.PATCH("/:id/detail", detailHandler.UpdateDealDetail)
	deals.DELETE("/:id/detail", detailHandler.DeleteDealDetail)

	// Per-category random sampling
	v1.GET("/deals-by-categories", dealHandler.GetRandomDealsByCategories)

	// Deal detail routes
	dealDetails := v1.Group("/deal-details")
	dealDetails.POST("", detailHandler.CreateDealDetail)
	dealDetails.GET("/:idOrCode", dealHandler.GetDealWithDetail)

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetAllCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Legacy alias kept for clients that predate route keys landing on the
	// plain category listing.
	v1.GET("/categories-with-route-keys", categoryHandler.GetAllCategories)

	log.Infof("Starting Dealflow backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
