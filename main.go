package main

import (
	"context"
	"log"
	"time"

	"habitly-be/internal/cache"
	"habitly-be/internal/config"
	"habitly-be/internal/controllers"
	"habitly-be/internal/database"
	"habitly-be/internal/jwt"
	"habitly-be/internal/middleware"
	"habitly-be/internal/repository"
	"habitly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(
		catalogRepo,
		cacheClient,
		time.Duration(cfg.CatalogCacheTTLMin)*time.Minute,
	)
	selectionService := service.NewSelectionService(selectionRepo, catalogRepo)
	trackerService := service.NewTrackerService(statusRepo)

	// Seed the predefined catalog (idempotent)
	if err := catalogService.Seed(); err != nil {
		log.Fatalf("Failed to seed default catalog: %v", err)
	}
	log.Println("Default categories & habits seeded")

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	catalogController := controllers.NewCatalogController(catalogService)
	habitController := controllers.NewHabitController(selectionService, trackerService)
	statusController := controllers.NewStatusController(trackerService)
	qrcodeController := controllers.NewQRCodeController(authService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require JWT authentication
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			// Catalog browsing and custom categories/habits
			protected.GET("/categories", catalogController.ListCategories)
			protected.POST("/categories", catalogController.CreateCategory)
			protected.DELETE("/categories/:categoryID", catalogController.DeleteCategory)
			protected.GET("/categories/:categoryID/habits", catalogController.ListHabits)
			protected.POST("/categories/:categoryID/habits", catalogController.CreateHabit)
			protected.PUT("/habits/:habitID", catalogController.UpdateHabit)

			// Selection ledger and daily tracking
			protected.GET("/my_habits", habitController.MyHabits)
			protected.POST("/my_habits/:habitID", habitController.Adopt)
			protected.PATCH("/my_habits/:habitID", habitController.Rename)
			protected.DELETE("/remove_habit/:categoryID/:habitID", habitController.Remove)
			protected.POST("/update_habit_status", statusController.UpdateHabitStatus)

			// QR code for sharing the caller's progress page
			protected.GET("/qrcode", qrcodeController.GenerateQRCode)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
