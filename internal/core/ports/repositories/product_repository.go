package repositories

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// ProductReader defines read operations for the product catalog. The catalog
// is reference data seeded at initialization, so there is no writer side.
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByName retrieves a product by its exact name.
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)

	// ListProducts retrieves the full catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
