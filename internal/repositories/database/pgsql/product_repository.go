package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductReader {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxProductRepository implements portsrepo.ProductReader
var _ portsrepo.ProductReader = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.findProduct(ctx, "product_id = $1", productID)
}

func (r *PgxProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.findProduct(ctx, "name = $1", name)
}

func (r *PgxProductRepository) findProduct(ctx context.Context, where string, arg any) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price, default_unit, default_unit_name
		FROM products
		WHERE ` + where + `;
	`
	var product domain.Product
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
		&product.DefaultUnit,
		&product.DefaultUnitName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, price, default_unit, default_unit_name
		FROM products
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Price,
			&product.DefaultUnit,
			&product.DefaultUnitName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}
