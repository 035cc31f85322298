package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/config"
	"vehicle-rental-api/middleware"
	"vehicle-rental-api/routes"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated successfully")

	auth := middleware.NewAuthManager(cfg.JWTSecret)

	// Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Vehicle Rental Booking API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, db, auth)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
