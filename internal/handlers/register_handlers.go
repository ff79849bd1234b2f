package handlers

import (
	"net/http"

	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/middleware"
	"github.com/FurkanErogluu/shopping-cart/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	public := r.Group("/api/v1")
	protected := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAuthRoutes(public, protected, services.Auth)
	registerConnectionRoutes(protected, services.Connection)
	registerProductRoutes(protected, services.Product)
	registerShoppingListRoutes(protected, services.ShoppingList)
}
