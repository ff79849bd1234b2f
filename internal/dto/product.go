package dto

import (
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse is the public view of a catalog entry.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DefaultUnit     domain.UnitType `json:"defaultUnit"`
	DefaultUnitName string          `json:"defaultUnitName"`
}

// ToProductResponse converts a domain.Product to its public view.
func ToProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ProductID,
		Name:            product.Name,
		Price:           product.Price,
		DefaultUnit:     product.DefaultUnit,
		DefaultUnitName: product.DefaultUnitName,
	}
}

// ToProductResponseList converts a slice of products to their public views.
func ToProductResponseList(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
