package services

import (
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	connectionSvc := NewConnectionService(repos.ConnectionRepo, repos.UserRepo)
	return &portssvc.ServiceContainer{
		Auth:         NewAuthService(cfg, repos.UserRepo, repos.RefreshTokenRepo),
		Connection:   connectionSvc,
		Product:      NewProductService(repos.ProductRepo),
		ShoppingList: NewShoppingListService(repos.ShoppingListRepo, repos.ProductRepo, repos.UserRepo, connectionSvc),
	}
}
