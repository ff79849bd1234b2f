package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/dto"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductReader
}

// NewProductService creates a new product service with the provided dependencies
func NewProductService(productRepo portsrepo.ProductReader) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// GetProductByID retrieves a single catalog product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("PRODUCT_NOT_FOUND", "Product not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetProductByName retrieves a product by exact name.
func (s *productService) GetProductByName(ctx context.Context, name string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("PRODUCT_NOT_FOUND", "Product not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find product by name", slog.String("name", name))
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// ListProducts returns the full catalog.
func (s *productService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return dto.ToProductResponseList(products), nil
}
