package pgsql

import (
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(dbPool),
		ConnectionRepo:   newPgxConnectionRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		ShoppingListRepo: newPgxShoppingListRepository(dbPool),
	}
}
