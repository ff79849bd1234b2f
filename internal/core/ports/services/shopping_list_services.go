package services

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/dto"
	"github.com/shopspring/decimal"
)

// ShoppingListReaderSvc defines read operations for shopping lists
type ShoppingListReaderSvc interface {
	// GetShoppingListByID retrieves a list with resolved items and members.
	// Fails SHOPPING_LIST_NOT_FOUND.
	GetShoppingListByID(ctx context.Context, shoppingListID string) (*dto.ShoppingListResponse, error)

	// ListShoppingListsForUser retrieves every list the user is a member of.
	ListShoppingListsForUser(ctx context.Context, userID string) ([]dto.ShoppingListResponse, error)
}

// ShoppingListWriterSvc defines list lifecycle operations
type ShoppingListWriterSvc interface {
	// CreateShoppingList creates a list with the creator as its sole member.
	CreateShoppingList(ctx context.Context, name, creatorUserID string) (*dto.ShoppingListResponse, error)

	// UpdateShoppingList sets the name unconditionally. When every existing
	// item is checked the completion flag is forced true; otherwise the
	// caller-supplied flag is taken verbatim.
	UpdateShoppingList(ctx context.Context, shoppingListID, name string, isCompleted bool) error

	// DeleteShoppingList removes a list and cascades to members and items.
	DeleteShoppingList(ctx context.Context, shoppingListID string) error
}

// ShoppingListItemSvc defines item operations
type ShoppingListItemSvc interface {
	// AddItem adds a line item for a catalog product. Fails
	// SHOPPING_LIST_NOT_FOUND, PRODUCT_NOT_FOUND, or ITEM_ALREADY_EXISTS
	// when a line for the product is already present.
	AddItem(ctx context.Context, shoppingListID, productID string, quantity decimal.Decimal) error

	// RemoveItem removes a line item. Fails SHOPPING_LIST_NOT_FOUND,
	// PRODUCT_NOT_FOUND (catalog check), or ITEM_NOT_FOUND.
	RemoveItem(ctx context.Context, shoppingListID, productID string) error

	// UpdateItemQuantity replaces a line item's quantity. Same failure triad
	// as RemoveItem.
	UpdateItemQuantity(ctx context.Context, shoppingListID, productID string, quantity decimal.Decimal) error

	// UpdateItemChecked sets a line item's checked flag and recomputes the
	// list's completion state in both directions.
	UpdateItemChecked(ctx context.Context, shoppingListID, productID string, isChecked bool) error
}

// ShoppingListMembershipSvc defines membership operations
type ShoppingListMembershipSvc interface {
	// AddMember invites a connected user to the list. Fails
	// SHOPPING_LIST_NOT_FOUND, MEMBER_ALREADY_EXISTS, INVALID_OPERATION on
	// self-invite, or NO_CONNECTION when requester and invitee are not
	// connected.
	AddMember(ctx context.Context, shoppingListID, inviteeUserID, requesterUserID string) error

	// Leave removes the requester's own membership. Fails
	// SHOPPING_LIST_NOT_FOUND or MEMBER_NOT_FOUND.
	Leave(ctx context.Context, shoppingListID, requesterUserID string) error
}

// ShoppingListSvcFacade combines all shopping-list service interfaces
type ShoppingListSvcFacade interface {
	ShoppingListReaderSvc
	ShoppingListWriterSvc
	ShoppingListItemSvc
	ShoppingListMembershipSvc
}
