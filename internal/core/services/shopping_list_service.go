package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// shoppingListService implements the ShoppingListSvcFacade interface
type shoppingListService struct {
	BaseService
	listRepo           portsrepo.ShoppingListRepository
	productRepo        portsrepo.ProductReader
	userRepo           portsrepo.UserReader
	connectionVerifier portssvc.ConnectionVerifierSvc
}

// NewShoppingListService creates a new shopping list service with the provided dependencies
func NewShoppingListService(
	listRepo portsrepo.ShoppingListRepository,
	productRepo portsrepo.ProductReader,
	userRepo portsrepo.UserReader,
	connectionVerifier portssvc.ConnectionVerifierSvc,
) portssvc.ShoppingListSvcFacade {
	return &shoppingListService{
		listRepo:           listRepo,
		productRepo:        productRepo,
		userRepo:           userRepo,
		connectionVerifier: connectionVerifier,
	}
}

var _ portssvc.ShoppingListSvcFacade = (*shoppingListService)(nil)

// GetShoppingListByID retrieves a list with resolved items and members.
func (s *shoppingListService) GetShoppingListByID(ctx context.Context, shoppingListID string) (*dto.ShoppingListResponse, error) {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToShoppingListResponse(list)
	return &resp, nil
}

// ListShoppingListsForUser retrieves every list the user is a member of.
func (s *shoppingListService) ListShoppingListsForUser(ctx context.Context, userID string) ([]dto.ShoppingListResponse, error) {
	lists, err := s.listRepo.ListShoppingListsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shopping lists", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	return dto.ToShoppingListResponseList(lists), nil
}

// CreateShoppingList creates a list with the creator as its sole member. The
// list and the bootstrap membership are persisted in one transaction.
func (s *shoppingListService) CreateShoppingList(ctx context.Context, name, creatorUserID string) (*dto.ShoppingListResponse, error) {
	now := time.Now()
	list := domain.ShoppingList{
		ShoppingListID: uuid.NewString(),
		Name:           name,
		CreatedAt:      now,
		IsCompleted:    false,
	}
	creator := domain.ShoppingListMember{
		ShoppingListID: list.ShoppingListID,
		UserID:         creatorUserID,
		JoinedAt:       now,
	}

	if err := s.listRepo.CreateShoppingList(ctx, list, creator); err != nil {
		s.LogError(ctx, err, "Failed to create shopping list", slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to create shopping list: %w", err)
	}

	s.LogInfo(ctx, "Shopping list created",
		slog.String("shopping_list_id", list.ShoppingListID),
		slog.String("user_id", creatorUserID))

	list.Members = []domain.ShoppingListMember{creator}
	resp := dto.ToShoppingListResponse(&list)
	return &resp, nil
}

// UpdateShoppingList sets the name and completion flag. The caller's flag is
// advisory in one direction: when every existing item is checked the list is
// completed regardless of what was sent.
func (s *shoppingListService) UpdateShoppingList(ctx context.Context, shoppingListID, name string, isCompleted bool) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}

	list.Name = name
	list.IsCompleted = isCompleted
	if list.AllItemsChecked() {
		list.IsCompleted = true
	}

	if err := s.listRepo.UpdateShoppingList(ctx, *list); err != nil {
		s.LogError(ctx, err, "Failed to update shopping list", slog.String("shopping_list_id", shoppingListID))
		return fmt.Errorf("failed to update shopping list: %w", err)
	}
	return nil
}

// DeleteShoppingList removes a list; members and items go with it.
func (s *shoppingListService) DeleteShoppingList(ctx context.Context, shoppingListID string) error {
	if _, err := s.findList(ctx, shoppingListID); err != nil {
		return err
	}

	if err := s.listRepo.DeleteShoppingList(ctx, shoppingListID); err != nil {
		s.LogError(ctx, err, "Failed to delete shopping list", slog.String("shopping_list_id", shoppingListID))
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}

	s.LogInfo(ctx, "Shopping list deleted", slog.String("shopping_list_id", shoppingListID))
	return nil
}

// AddItem adds a line item for a catalog product. Adding an item to a
// completed list reopens it.
func (s *shoppingListService) AddItem(ctx context.Context, shoppingListID, productID string, quantity decimal.Decimal) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}

	item := domain.ShoppingListItem{
		ShoppingListID: shoppingListID,
		ProductID:      productID,
		Quantity:       quantity,
		IsChecked:      false,
	}
	if err := s.listRepo.AddItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewBusiness("ITEM_ALREADY_EXISTS", "Item already exists in shopping list", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "Failed to add item",
			slog.String("shopping_list_id", shoppingListID), slog.String("product_id", productID))
		return fmt.Errorf("failed to add item: %w", err)
	}

	// A fresh item is unchecked, so a completed list is no longer complete.
	if list.IsCompleted {
		list.IsCompleted = false
		if err := s.listRepo.UpdateShoppingList(ctx, *list); err != nil {
			s.LogError(ctx, err, "Failed to reopen shopping list", slog.String("shopping_list_id", shoppingListID))
			return fmt.Errorf("failed to reopen shopping list: %w", err)
		}
	}
	return nil
}

// RemoveItem removes a line item and recomputes the list's completion state.
func (s *shoppingListService) RemoveItem(ctx context.Context, shoppingListID, productID string) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}
	if _, ok := list.FindItem(productID); !ok {
		return apperrors.NewBusiness("ITEM_NOT_FOUND", "Item not found in shopping list", apperrors.ErrNotFound)
	}

	if err := s.listRepo.RemoveItem(ctx, shoppingListID, productID); err != nil {
		s.LogError(ctx, err, "Failed to remove item",
			slog.String("shopping_list_id", shoppingListID), slog.String("product_id", productID))
		return fmt.Errorf("failed to remove item: %w", err)
	}

	remaining := make([]domain.ShoppingListItem, 0, len(list.Items))
	for _, item := range list.Items {
		if item.ProductID != productID {
			remaining = append(remaining, item)
		}
	}
	list.Items = remaining
	return s.syncCompleted(ctx, list)
}

// UpdateItemQuantity replaces a line item's quantity.
func (s *shoppingListService) UpdateItemQuantity(ctx context.Context, shoppingListID, productID string, quantity decimal.Decimal) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}
	item, ok := list.FindItem(productID)
	if !ok {
		return apperrors.NewBusiness("ITEM_NOT_FOUND", "Item not found in shopping list", apperrors.ErrNotFound)
	}

	item.Quantity = quantity
	if err := s.listRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update item quantity",
			slog.String("shopping_list_id", shoppingListID), slog.String("product_id", productID))
		return fmt.Errorf("failed to update item quantity: %w", err)
	}
	return nil
}

// UpdateItemChecked sets a line item's checked flag and recomputes the list's
// completion state in both directions. Unlike the quantity path there is no
// catalog lookup: the item either is on the list or it is not.
func (s *shoppingListService) UpdateItemChecked(ctx context.Context, shoppingListID, productID string, isChecked bool) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}
	item, ok := list.FindItem(productID)
	if !ok {
		return apperrors.NewBusiness("ITEM_NOT_FOUND", "Item not found in shopping list", apperrors.ErrNotFound)
	}

	item.IsChecked = isChecked
	if err := s.listRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update item checked state",
			slog.String("shopping_list_id", shoppingListID), slog.String("product_id", productID))
		return fmt.Errorf("failed to update item checked state: %w", err)
	}
	return s.syncCompleted(ctx, list)
}

// AddMember invites a connected user to the list. Only the connection
// between requester and invitee matters; membership of the requester is
// checked at the handler boundary.
func (s *shoppingListService) AddMember(ctx context.Context, shoppingListID, inviteeUserID, requesterUserID string) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, inviteeUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBusiness("USER_NOT_FOUND", "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find invitee", slog.String("user_id", inviteeUserID))
		return fmt.Errorf("failed to find invitee: %w", err)
	}

	// Membership wins over the self-invite rule: a member inviting themself
	// reads as already a member.
	if list.HasMember(inviteeUserID) {
		return apperrors.NewBusiness("MEMBER_ALREADY_EXISTS", "User is already a member of this shopping list", apperrors.ErrInvalidOperation)
	}

	if inviteeUserID == requesterUserID {
		return apperrors.NewBusiness("INVALID_OPERATION", "Cannot invite yourself", apperrors.ErrInvalidOperation)
	}

	connected, err := s.connectionVerifier.AreConnected(ctx, requesterUserID, inviteeUserID)
	if err != nil {
		return err
	}
	if !connected {
		return apperrors.NewBusiness("NO_CONNECTION", "You can only invite connected users", apperrors.ErrInvalidOperation)
	}

	member := domain.ShoppingListMember{
		ShoppingListID: shoppingListID,
		UserID:         inviteeUserID,
		JoinedAt:       time.Now(),
	}
	if err := s.listRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewBusiness("MEMBER_ALREADY_EXISTS", "User is already a member of this shopping list", apperrors.ErrInvalidOperation)
		}
		s.LogError(ctx, err, "Failed to add member",
			slog.String("shopping_list_id", shoppingListID), slog.String("user_id", inviteeUserID))
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.LogInfo(ctx, "Member added to shopping list",
		slog.String("shopping_list_id", shoppingListID), slog.String("user_id", inviteeUserID))
	return nil
}

// Leave removes the requester's own membership. The last member may leave;
// an orphaned list stays readable by id.
func (s *shoppingListService) Leave(ctx context.Context, shoppingListID, requesterUserID string) error {
	list, err := s.findList(ctx, shoppingListID)
	if err != nil {
		return err
	}

	if !list.HasMember(requesterUserID) {
		return apperrors.NewBusiness("MEMBER_NOT_FOUND", "User is not a member of this shopping list", apperrors.ErrNotFound)
	}

	if err := s.listRepo.RemoveMember(ctx, shoppingListID, requesterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBusiness("MEMBER_NOT_FOUND", "User is not a member of this shopping list", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to remove member",
			slog.String("shopping_list_id", shoppingListID), slog.String("user_id", requesterUserID))
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.LogInfo(ctx, "Member left shopping list",
		slog.String("shopping_list_id", shoppingListID), slog.String("user_id", requesterUserID))
	return nil
}

// findList loads a list or maps the miss to SHOPPING_LIST_NOT_FOUND.
func (s *shoppingListService) findList(ctx context.Context, shoppingListID string) (*domain.ShoppingList, error) {
	list, err := s.listRepo.FindShoppingListByID(ctx, shoppingListID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("SHOPPING_LIST_NOT_FOUND", "Shopping list not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find shopping list", slog.String("shopping_list_id", shoppingListID))
		return nil, fmt.Errorf("failed to find shopping list: %w", err)
	}
	return list, nil
}

// findProduct loads a catalog product or maps the miss to PRODUCT_NOT_FOUND.
func (s *shoppingListService) findProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("PRODUCT_NOT_FOUND", "Product not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// syncCompleted persists the derived completion flag when it changed.
func (s *shoppingListService) syncCompleted(ctx context.Context, list *domain.ShoppingList) error {
	derived := list.DeriveCompleted()
	if derived == list.IsCompleted {
		return nil
	}
	list.IsCompleted = derived
	if err := s.listRepo.UpdateShoppingList(ctx, *list); err != nil {
		s.LogError(ctx, err, "Failed to sync completion state", slog.String("shopping_list_id", list.ShoppingListID))
		return fmt.Errorf("failed to sync completion state: %w", err)
	}
	return nil
}
