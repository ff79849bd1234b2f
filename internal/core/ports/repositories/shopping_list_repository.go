package repositories

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// ShoppingListReader defines read operations for shopping lists
type ShoppingListReader interface {
	// FindShoppingListByID retrieves a list with its items and members resolved.
	FindShoppingListByID(ctx context.Context, shoppingListID string) (*domain.ShoppingList, error)

	// ListShoppingListsByUserID retrieves every list the user is a member of,
	// items and members resolved.
	ListShoppingListsByUserID(ctx context.Context, userID string) ([]domain.ShoppingList, error)
}

// ShoppingListWriter defines write operations for shopping lists
type ShoppingListWriter interface {
	// CreateShoppingList persists a list and its initial membership in one
	// transaction so a list can never exist without members.
	CreateShoppingList(ctx context.Context, list domain.ShoppingList, creator domain.ShoppingListMember) error

	// UpdateShoppingList persists the list's name and completion flag.
	UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error

	// DeleteShoppingList removes a list; members and items go with it.
	DeleteShoppingList(ctx context.Context, shoppingListID string) error
}

// ShoppingListMembershipManager defines operations for list membership
type ShoppingListMembershipManager interface {
	// AddMember inserts a membership row. A duplicate (list, user) pair
	// yields apperrors.ErrConflict.
	AddMember(ctx context.Context, member domain.ShoppingListMember) error

	// RemoveMember deletes a membership row. Yields apperrors.ErrNotFound
	// when the row does not exist.
	RemoveMember(ctx context.Context, shoppingListID, userID string) error
}

// ShoppingListItemManager defines operations for list items
type ShoppingListItemManager interface {
	// AddItem inserts a line item. A duplicate (list, product) pair yields
	// apperrors.ErrConflict.
	AddItem(ctx context.Context, item domain.ShoppingListItem) error

	// UpdateItem persists an item's quantity and checked flag.
	UpdateItem(ctx context.Context, item domain.ShoppingListItem) error

	// RemoveItem deletes a line item. Yields apperrors.ErrNotFound when the
	// row does not exist.
	RemoveItem(ctx context.Context, shoppingListID, productID string) error
}

// ShoppingListRepository combines all shopping-list repository interfaces
type ShoppingListRepository interface {
	ShoppingListReader
	ShoppingListWriter
	ShoppingListMembershipManager
	ShoppingListItemManager
}
