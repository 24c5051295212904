package main

import (
	"context"
	"log"
	"os"
	"time"

	"networth-tracker/api/handlers"
	"networth-tracker/api/logger"
	"networth-tracker/api/middleware"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func main() {
	defer logger.Sync()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongodb.EnsureIndexes(ctx); err != nil {
		logger.Get().Fatal("failed to create indexes", zap.Error(err))
	}

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.Use(middleware.CorsMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware)
	{
		// Asset routes
		api.POST("/assets", handlers.CreateAsset)
		api.GET("/assets", handlers.ListAssets)
		api.GET("/assets/:id", handlers.GetAsset)
		api.PUT("/assets/:id", handlers.UpdateAsset)
		api.DELETE("/assets/:id", handlers.DeleteAsset)

		// Liability routes
		api.POST("/liabilities", handlers.CreateLiability)
		api.GET("/liabilities", handlers.ListLiabilities)
		api.GET("/liabilities/:id", handlers.GetLiability)
		api.PUT("/liabilities/:id", handlers.UpdateLiability)
		api.DELETE("/liabilities/:id", handlers.DeleteLiability)

		// Net worth snapshots are immutable, so no PUT route exists
		api.POST("/net-worth", handlers.CreateNetWorthSnapshot)
		api.GET("/net-worth", handlers.ListNetWorthHistory)
		api.GET("/net-worth/:id", handlers.GetNetWorthSnapshot)
		api.DELETE("/net-worth/:id", handlers.DeleteNetWorthSnapshot)

		// Notification settings routes
		api.GET("/notifications/settings", handlers.GetNotificationSettings)
		api.POST("/notifications/settings", handlers.CreateNotificationSettings)
		api.PUT("/notifications/settings", handlers.UpdateNotificationSettings)
		api.DELETE("/notifications/settings", handlers.DeleteNotificationSettings)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
