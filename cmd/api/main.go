package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finpro/internal/catalog"
	"finpro/internal/config"
	"finpro/internal/database"
	"finpro/internal/handlers"
	"finpro/internal/logger"
	"finpro/internal/middleware"
	"finpro/internal/scoring"
	"finpro/internal/services"
	"finpro/internal/validator"

	_ "finpro/internal/docs" // Import swagger docs
)

// @title           FinPro Robo-Advisor API
// @version         1.0
// @description     FinPro recommends ranked financial assets per user, combining a trained SVD collaborative-filtering model with a rule-based cold-start fallback.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
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

	// Load the asset catalog. A missing or malformed file is a degraded
	// capability, not a startup failure: the service stays reachable and
	// cold-start ranking simply yields empty results.
	cat, err := catalog.Load(appConfig.CatalogPath)
	if err != nil {
		log.Errorw("asset catalog unavailable, serving empty catalog",
			"path", appConfig.CatalogPath, "error", err)
		cat = catalog.New(nil)
	} else {
		log.Infow("asset catalog loaded", "path", appConfig.CatalogPath, "assets", cat.Len())
	}
	catalogs := catalog.NewStore(appConfig.CatalogPath, cat)

	// Load the trained model. Absence degrades to cold-start-only mode:
	// every user is classified as cold until the artifact is restored.
	var model services.ScoringModel
	if svd, err := scoring.Load(appConfig.ModelPath); err != nil {
		log.Errorw("scoring model unavailable, all users will be treated as cold",
			"path", appConfig.ModelPath, "error", err)
	} else {
		model = svd
		log.Infow("scoring model loaded", "path", appConfig.ModelPath, "name", svd.Name())
	}

	// Open the audit database
	dbManager, err := database.NewManager(appConfig.AuditDBPath)
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate audit database: %w", err)
	}

	// Initialize services
	recommendationService := services.NewRecommendationService(catalogs, model)
	auditService := services.NewAuditService(dbManager.DB())

	// Initialize handlers
	recommendHandler := handlers.NewRecommendHandler(recommendationService, auditService)
	assetHandler := handlers.NewAssetHandler(catalogs)
	adminHandler := handlers.NewAdminHandler(catalogs, auditService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "FinPro Robo-Advisor is Live"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	v1.POST("/recommend", recommendHandler.Recommend)

	assets := v1.Group("/assets")
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:isin", assetHandler.GetAssetByISIN)

	// Admin routes, guarded by the X-API-Key header
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(appConfig.AdminAPIKey))
	admin.POST("/catalog/reload", adminHandler.ReloadCatalog)
	admin.GET("/recommendation-logs", adminHandler.ListRecommendationLogs)

	// The write timeout bounds total per-request ranking latency, which is
	// linear in catalog size on the warm path.
	server := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      router,
		ReadTimeout:  appConfig.RequestTimeout,
		WriteTimeout: appConfig.RequestTimeout,
	}

	log.Infof("Starting FinPro backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return server.ListenAndServe()
}
