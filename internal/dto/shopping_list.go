package dto

import (
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShoppingListRequest carries the name for a new list.
type CreateShoppingListRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateShoppingListRequest carries the new name and the caller's completion
// flag. The flag is advisory: the service forces completion when every item
// is already checked.
type UpdateShoppingListRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	IsCompleted bool   `json:"isCompleted"`
}

// AddItemRequest carries the product and quantity for a new line item.
// Quantity positivity is checked at the boundary.
type AddItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// UpdateItemQuantityRequest carries the replacement quantity for a line item.
type UpdateItemQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// UpdateItemCheckedRequest carries the checked flag for a line item. A
// pointer distinguishes an explicit false from an omitted field.
type UpdateItemCheckedRequest struct {
	IsChecked *bool `json:"isChecked" binding:"required"`
}

// AddMemberRequest carries the user to invite to a list.
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ShoppingListItemResponse is the view of a single line item.
type ShoppingListItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	IsChecked bool            `json:"isChecked"`
}

// ShoppingListMemberResponse is the view of a single membership.
type ShoppingListMemberResponse struct {
	UserID   string    `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ShoppingListResponse is the full view of a list with items and members.
type ShoppingListResponse struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	CreatedAt   time.Time                    `json:"createdAt"`
	IsCompleted bool                         `json:"isCompleted"`
	Items       []ShoppingListItemResponse   `json:"items"`
	Members     []ShoppingListMemberResponse `json:"members"`
}

// ToShoppingListResponse converts a domain.ShoppingList with resolved items
// and members to its public view.
func ToShoppingListResponse(list *domain.ShoppingList) ShoppingListResponse {
	items := make([]ShoppingListItemResponse, len(list.Items))
	for i, item := range list.Items {
		items[i] = ShoppingListItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			IsChecked: item.IsChecked,
		}
	}
	members := make([]ShoppingListMemberResponse, len(list.Members))
	for i, member := range list.Members {
		members[i] = ShoppingListMemberResponse{
			UserID:   member.UserID,
			JoinedAt: member.JoinedAt,
		}
	}
	return ShoppingListResponse{
		ID:          list.ShoppingListID,
		Name:        list.Name,
		CreatedAt:   list.CreatedAt,
		IsCompleted: list.IsCompleted,
		Items:       items,
		Members:     members,
	}
}

// ToShoppingListResponseList converts a slice of lists to their public views.
func ToShoppingListResponseList(lists []domain.ShoppingList) []ShoppingListResponse {
	responses := make([]ShoppingListResponse, len(lists))
	for i := range lists {
		responses[i] = ToShoppingListResponse(&lists[i])
	}
	return responses
}
