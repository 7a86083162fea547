package main

import (
	"log"

	"github.com/asset-management-api/internal/config"
	"github.com/asset-management-api/internal/constants"
	"github.com/asset-management-api/internal/database"
	"github.com/asset-management-api/internal/handlers"
	"github.com/asset-management-api/internal/middleware"
	"github.com/asset-management-api/internal/repository"
	"github.com/asset-management-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data when requested
	if cfg.SeedDemoData {
		if err := database.NewSeeder(database.GetDB()).Run(); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware: Redis when configured, cookies otherwise
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, deptRepo)
	assetService := services.NewAssetService(assetRepo, userRepo)
	deptService := services.NewDepartmentService(deptRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	assetHandler := handlers.NewAssetHandler(assetService)
	deptHandler := handlers.NewDepartmentHandler(deptService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(assetService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Asset Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.GetDashboard)

		// CSV export (any authenticated user)
		api.GET("/export/csv", middleware.RequireAuth(), exportHandler.ExportAssetsCSV)

		// User listing (protected)
		api.GET("/users", middleware.RequireAuth(), authHandler.ListUsers)

		// Asset routes (protected; mutations manager-gated)
		assets := api.Group("/assets")
		assets.Use(middleware.RequireAuth())
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", middleware.RequireManager(), assetHandler.CreateAsset)
			assets.GET("/:id", middleware.RequireAsset(), assetHandler.GetAsset)
			assets.PUT("/:id", middleware.RequireManager(), middleware.RequireAsset(), assetHandler.UpdateAsset)
			assets.DELETE("/:id", middleware.RequireManager(), middleware.RequireAsset(), assetHandler.DeleteAsset)
			assets.GET("/:id/maintenance", middleware.RequireAsset(), assetHandler.ListMaintenance)
			assets.POST("/:id/maintenance", middleware.RequireManager(), middleware.RequireAsset(), assetHandler.AddMaintenance)
		}

		// Department routes (protected; mutations manager-gated)
		departments := api.Group("/departments")
		departments.Use(middleware.RequireAuth())
		{
			departments.GET("", deptHandler.ListDepartments)
			departments.POST("", middleware.RequireManager(), deptHandler.CreateDepartment)
			departments.DELETE("/:id", middleware.RequireManager(), deptHandler.DeleteDepartment)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisHost == "" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	return redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		redisAddr,                 // Redis address from config
		"",                        // username (empty for default user)
		"",                        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
}
