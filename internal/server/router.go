package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"peluqueria/internal/auth"
	"peluqueria/internal/config"
	"peluqueria/internal/handlers"
	"peluqueria/internal/models"
)

// New assembles the router from its dependencies so tests can run it against
// an in-memory database.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	authHandler := handlers.NewAuthHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db)
	productHandler := handlers.NewProductHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	userHandler := handlers.NewUserHandler(db)
	companyHandler := handlers.NewCompanyHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	api := r.Group("/api")
	api.Use(auth.RequireAuth(cfg.Auth.Secret))
	{
		api.POST("/orders/cart", orderHandler.CreateFromCart)
		api.GET("/orders/:id", orderHandler.GetByID)
		api.GET("/orders/user/:userId", orderHandler.ListByUser)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Get)
		api.GET("/company", companyHandler.Get)
	}

	admin := api.Group("")
	admin.Use(auth.RequireRole(models.RoleAdmin))
	{
		admin.GET("/orders", orderHandler.List)
		admin.GET("/orders/earnings", orderHandler.Earnings)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/users", userHandler.List)
		admin.GET("/users/:id", userHandler.Get)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.GET("/roles", userHandler.ListRoles)

		admin.PUT("/company", companyHandler.Update)
	}

	return r
}
