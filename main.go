package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/kamuz-01/Sistema-Feira/api/v1"
	"github.com/kamuz-01/Sistema-Feira/config"
	"github.com/kamuz-01/Sistema-Feira/database"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	config.MustGetEnv("JWT_SECRET")

	// Connect, migrate and seed
	database.Initialize()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 Sistema Feira starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
