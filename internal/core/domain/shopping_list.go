package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingList is a named list shared among its members. IsCompleted is
// derived from item state: a list is complete when it has at least one item
// and every item is checked. Members and Items are resolved by lookup; they
// are populated on reads but never act as an object graph.
type ShoppingList struct {
	ShoppingListID string    `json:"shoppingListID" db:"shopping_list_id"`
	Name           string    `json:"name" db:"name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	IsCompleted    bool      `json:"isCompleted" db:"is_completed"`

	Members []ShoppingListMember `json:"members,omitempty" db:"-"`
	Items   []ShoppingListItem   `json:"items,omitempty" db:"-"`
}

// ShoppingListMember links a user to a list. Composite identity
// (shoppingListID, userID).
type ShoppingListMember struct {
	ShoppingListID string    `json:"shoppingListID" db:"shopping_list_id"`
	UserID         string    `json:"userID" db:"user_id"`
	JoinedAt       time.Time `json:"joinedAt" db:"joined_at"`
}

// ShoppingListItem is a single product line on a list. Composite identity
// (shoppingListID, productID): at most one line per product per list.
type ShoppingListItem struct {
	ShoppingListID string          `json:"shoppingListID" db:"shopping_list_id"`
	ProductID      string          `json:"productID" db:"product_id"`
	Quantity       decimal.Decimal `json:"quantity" db:"quantity"`
	IsChecked      bool            `json:"isChecked" db:"is_checked"`
}

// AllItemsChecked reports whether every item on the list is checked.
// True for an empty list, matching the update override rule.
func (l ShoppingList) AllItemsChecked() bool {
	for _, item := range l.Items {
		if !item.IsChecked {
			return false
		}
	}
	return true
}

// DeriveCompleted computes the completion state from item state: a list is
// complete only when it is non-empty and every item is checked.
func (l ShoppingList) DeriveCompleted() bool {
	return len(l.Items) > 0 && l.AllItemsChecked()
}

// FindItem returns the line item for the given product, if present.
func (l ShoppingList) FindItem(productID string) (*ShoppingListItem, bool) {
	for i := range l.Items {
		if l.Items[i].ProductID == productID {
			return &l.Items[i], true
		}
	}
	return nil, false
}

// HasMember reports whether the given user belongs to the list.
func (l ShoppingList) HasMember(userID string) bool {
	for _, m := range l.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
