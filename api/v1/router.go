package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/middleware"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Identity endpoints
	router.POST("/register", Register)
	router.POST("/api-token-auth", TokenAuth)
	router.GET("/whoami", middleware.AuthMiddleware(), WhoAmI)

	// Markets - public read, authenticated write
	feiras := router.Group("/feiras")
	{
		feiras.GET("", ListFeiras)
		feiras.GET("/:id", GetFeira)
		feiras.POST("", middleware.AuthMiddleware(), CreateFeira)
		feiras.PUT("/:id", middleware.AuthMiddleware(), UpdateFeira)
		feiras.PATCH("/:id", middleware.AuthMiddleware(), PatchFeira)
		feiras.DELETE("/:id", middleware.AuthMiddleware(), DeleteFeira)
	}

	// Producer profiles - public read, authenticated write
	produtores := router.Group("/produtores")
	{
		produtores.GET("", ListProdutores)
		produtores.GET("/:id", GetProdutor)
		produtores.POST("", middleware.AuthMiddleware(), CreateProdutor)
		produtores.PUT("/:id", middleware.AuthMiddleware(), UpdateProdutor)
		produtores.PATCH("/:id", middleware.AuthMiddleware(), PatchProdutor)
		produtores.DELETE("/:id", middleware.AuthMiddleware(), DeleteProdutor)
	}

	// Products - listing is public but ownership-filtered for
	// authenticated producers, so it carries the optional middleware
	produtos := router.Group("/produtos")
	{
		produtos.GET("", middleware.OptionalAuthMiddleware(), ListProdutos)
		produtos.GET("/meus", middleware.AuthMiddleware(), MeusProdutos)
		produtos.GET("/:id", GetProduto)
		produtos.POST("", middleware.AuthMiddleware(), CreateProduto)
		produtos.PUT("/:id", middleware.AuthMiddleware(), UpdateProduto)
		produtos.PATCH("/:id", middleware.AuthMiddleware(), PatchProduto)
		produtos.DELETE("/:id", middleware.AuthMiddleware(), DeleteProduto)
	}

	// Account management - moderators only
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.ModeradorMiddleware())
	{
		users.GET("", ListUsers)
		users.DELETE("/:id", DeleteUser)
	}
}
