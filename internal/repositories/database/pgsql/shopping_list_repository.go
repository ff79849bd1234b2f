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

type PgxShoppingListRepository struct {
	BaseRepository
}

func newPgxShoppingListRepository(pool *pgxpool.Pool) portsrepo.ShoppingListRepository {
	return &PgxShoppingListRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxShoppingListRepository implements portsrepo.ShoppingListRepository
var _ portsrepo.ShoppingListRepository = (*PgxShoppingListRepository)(nil)

func (r *PgxShoppingListRepository) FindShoppingListByID(ctx context.Context, shoppingListID string) (*domain.ShoppingList, error) {
	query := `
		SELECT shopping_list_id, name, created_at, is_completed
		FROM shopping_lists
		WHERE shopping_list_id = $1;
	`
	var list domain.ShoppingList
	err := r.Pool.QueryRow(ctx, query, shoppingListID).Scan(
		&list.ShoppingListID,
		&list.Name,
		&list.CreatedAt,
		&list.IsCompleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shopping list by ID %s: %w", shoppingListID, err)
	}

	if err := r.resolve(ctx, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *PgxShoppingListRepository) ListShoppingListsByUserID(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	query := `
		SELECT sl.shopping_list_id, sl.name, sl.created_at, sl.is_completed
		FROM shopping_lists sl
		JOIN shopping_list_members slm ON slm.shopping_list_id = sl.shopping_list_id
		WHERE slm.user_id = $1
		ORDER BY sl.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.ShoppingList{}
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(
			&list.ShoppingListID,
			&list.Name,
			&list.CreatedAt,
			&list.IsCompleted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list row: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping list rows: %w", err)
	}

	for i := range lists {
		if err := r.resolve(ctx, &lists[i]); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// resolve populates the list's members and items.
func (r *PgxShoppingListRepository) resolve(ctx context.Context, list *domain.ShoppingList) error {
	memberQuery := `
		SELECT shopping_list_id, user_id, joined_at
		FROM shopping_list_members
		WHERE shopping_list_id = $1
		ORDER BY joined_at;
	`
	memberRows, err := r.Pool.Query(ctx, memberQuery, list.ShoppingListID)
	if err != nil {
		return fmt.Errorf("failed to query list members: %w", err)
	}
	defer memberRows.Close()

	list.Members = []domain.ShoppingListMember{}
	for memberRows.Next() {
		var member domain.ShoppingListMember
		if err := memberRows.Scan(&member.ShoppingListID, &member.UserID, &member.JoinedAt); err != nil {
			return fmt.Errorf("failed to scan member row: %w", err)
		}
		list.Members = append(list.Members, member)
	}
	if err := memberRows.Err(); err != nil {
		return fmt.Errorf("error iterating member rows: %w", err)
	}

	itemQuery := `
		SELECT shopping_list_id, product_id, quantity, is_checked
		FROM shopping_list_items
		WHERE shopping_list_id = $1
		ORDER BY product_id;
	`
	itemRows, err := r.Pool.Query(ctx, itemQuery, list.ShoppingListID)
	if err != nil {
		return fmt.Errorf("failed to query list items: %w", err)
	}
	defer itemRows.Close()

	list.Items = []domain.ShoppingListItem{}
	for itemRows.Next() {
		var item domain.ShoppingListItem
		if err := itemRows.Scan(&item.ShoppingListID, &item.ProductID, &item.Quantity, &item.IsChecked); err != nil {
			return fmt.Errorf("failed to scan item row: %w", err)
		}
		list.Items = append(list.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("error iterating item rows: %w", err)
	}
	return nil
}

func (r *PgxShoppingListRepository) CreateShoppingList(ctx context.Context, list domain.ShoppingList, creator domain.ShoppingListMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	listQuery := `
		INSERT INTO shopping_lists (shopping_list_id, name, created_at, is_completed)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, listQuery, list.ShoppingListID, list.Name, list.CreatedAt, list.IsCompleted); err != nil {
		return fmt.Errorf("failed to insert shopping list: %w", err)
	}

	memberQuery := `
		INSERT INTO shopping_list_members (shopping_list_id, user_id, joined_at)
		VALUES ($1, $2, $3);
	`
	if _, err := tx.Exec(ctx, memberQuery, creator.ShoppingListID, creator.UserID, creator.JoinedAt); err != nil {
		return fmt.Errorf("failed to insert creator membership: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxShoppingListRepository) UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error {
	query := `
		UPDATE shopping_lists
		SET name = $2, is_completed = $3
		WHERE shopping_list_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, list.ShoppingListID, list.Name, list.IsCompleted)
	if err != nil {
		return fmt.Errorf("failed to update shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoppingListRepository) DeleteShoppingList(ctx context.Context, shoppingListID string) error {
	// Members and items cascade via foreign keys.
	query := `DELETE FROM shopping_lists WHERE shopping_list_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, shoppingListID)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoppingListRepository) AddMember(ctx context.Context, member domain.ShoppingListMember) error {
	query := `
		INSERT INTO shopping_list_members (shopping_list_id, user_id, joined_at)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, member.ShoppingListID, member.UserID, member.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *PgxShoppingListRepository) RemoveMember(ctx context.Context, shoppingListID, userID string) error {
	query := `
		DELETE FROM shopping_list_members
		WHERE shopping_list_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, shoppingListID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoppingListRepository) AddItem(ctx context.Context, item domain.ShoppingListItem) error {
	query := `
		INSERT INTO shopping_list_items (shopping_list_id, product_id, quantity, is_checked)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, item.ShoppingListID, item.ProductID, item.Quantity, item.IsChecked)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to add item: %w", err)
	}
	return nil
}

func (r *PgxShoppingListRepository) UpdateItem(ctx context.Context, item domain.ShoppingListItem) error {
	query := `
		UPDATE shopping_list_items
		SET quantity = $3, is_checked = $4
		WHERE shopping_list_id = $1 AND product_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, item.ShoppingListID, item.ProductID, item.Quantity, item.IsChecked)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoppingListRepository) RemoveItem(ctx context.Context, shoppingListID, productID string) error {
	query := `
		DELETE FROM shopping_list_items
		WHERE shopping_list_id = $1 AND product_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, shoppingListID, productID)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
