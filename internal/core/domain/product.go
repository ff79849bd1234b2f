package domain

import "github.com/shopspring/decimal"

// UnitType classifies how a product is usually measured.
type UnitType string

const (
	UnitPiece  UnitType = "PIECE"
	UnitWeight UnitType = "WEIGHT"
)

// Product is an immutable catalog entry, seeded at initialization.
type Product struct {
	ProductID       string          `json:"productID" db:"product_id"`
	Name            string          `json:"name" db:"name"`
	Price           decimal.Decimal `json:"price" db:"price"`
	DefaultUnit     UnitType        `json:"defaultUnit" db:"default_unit"`
	DefaultUnitName string          `json:"defaultUnitName" db:"default_unit_name"`
}
