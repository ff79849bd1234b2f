package services

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/dto"
)

// ProductSvcFacade exposes read-only catalog lookups.
type ProductSvcFacade interface {
	// GetProductByID retrieves a product. Fails PRODUCT_NOT_FOUND.
	GetProductByID(ctx context.Context, productID string) (*dto.ProductResponse, error)

	// GetProductByName retrieves a product by exact name. Fails PRODUCT_NOT_FOUND.
	GetProductByName(ctx context.Context, name string) (*dto.ProductResponse, error)

	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
}
