package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ShoppingListServiceTestSuite struct {
	suite.Suite
	mockListRepo    *MockShoppingListRepository
	mockProductRepo *MockProductRepository
	mockUserRepo    *MockUserRepository
	mockVerifier    *MockConnectionVerifier
	service         portssvc.ShoppingListSvcFacade
}

func (suite *ShoppingListServiceTestSuite) SetupTest() {
	suite.mockListRepo = new(MockShoppingListRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockVerifier = new(MockConnectionVerifier)
	suite.service = services.NewShoppingListService(suite.mockListRepo, suite.mockProductRepo, suite.mockUserRepo, suite.mockVerifier)
}

func (suite *ShoppingListServiceTestSuite) expectProduct(ctx context.Context, productID string) {
	product := &domain.Product{ProductID: productID, Name: "Ekmek", Price: mustDecimal("15.00"), DefaultUnit: domain.UnitPiece, DefaultUnitName: "Adet"}
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
}

// --- Create Tests ---
func (suite *ShoppingListServiceTestSuite) TestCreateShoppingList_BootstrapsCreatorMembership() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockListRepo.On("CreateShoppingList", ctx, mock.MatchedBy(func(list domain.ShoppingList) bool {
		return list.Name == "Weekly Groceries" && !list.IsCompleted && list.ShoppingListID != ""
	}), mock.MatchedBy(func(member domain.ShoppingListMember) bool {
		return member.UserID == creatorID && member.ShoppingListID != ""
	})).Return(nil).Once()

	resp, err := suite.service.CreateShoppingList(ctx, "Weekly Groceries", creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("Weekly Groceries", resp.Name)
	suite.False(resp.IsCompleted)
	suite.Require().Len(resp.Members, 1)
	suite.Equal(creatorID, resp.Members[0].UserID)
	suite.mockListRepo.AssertExpectations(suite.T())
}

// --- Get / List Tests ---
func (suite *ShoppingListServiceTestSuite) TestGetShoppingListByID_NotFound() {
	ctx := context.Background()
	listID := uuid.NewString()

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetShoppingListByID(ctx, listID)

	suite.Require().Error(err)
	suite.Nil(resp)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("SHOPPING_LIST_NOT_FOUND", bizErr.Code)
}

func (suite *ShoppingListServiceTestSuite) TestListShoppingListsForUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	lists := []domain.ShoppingList{
		{ShoppingListID: uuid.NewString(), Name: "Groceries"},
		{ShoppingListID: uuid.NewString(), Name: "Party"},
	}

	suite.mockListRepo.On("ListShoppingListsByUserID", ctx, userID).Return(lists, nil).Once()

	responses, err := suite.service.ListShoppingListsForUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(responses, 2)
}

// --- Update Tests ---
func (suite *ShoppingListServiceTestSuite) TestUpdateShoppingList_AllCheckedForcesCompletion() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: true},
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("2"), IsChecked: true},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		// The caller sent false but every item is checked.
		return updated.Name == "Renamed" && updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateShoppingList(ctx, listID, "Renamed", false)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestUpdateShoppingList_UncheckedItemKeepsCallerFlag() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: false},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return !updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateShoppingList(ctx, listID, "Groceries", false)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestUpdateShoppingList_ManualCompletionKept() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: true},
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: false},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	// The override only works toward completion: a caller may mark a
	// partially checked list complete.
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateShoppingList(ctx, listID, "Groceries", true)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestUpdateShoppingList_EmptyListAlwaysCompleted() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Empty"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	// An empty list vacuously satisfies "all items checked", so the update
	// path forces completion even when the caller sent false.
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateShoppingList(ctx, listID, "Empty", false)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

// --- Delete Tests ---
func (suite *ShoppingListServiceTestSuite) TestDeleteShoppingList_Success() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Doomed"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("DeleteShoppingList", ctx, listID).Return(nil).Once()

	err := suite.service.DeleteShoppingList(ctx, listID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

// --- Item Tests ---
func (suite *ShoppingListServiceTestSuite) TestAddItem_Success() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)
	suite.mockListRepo.On("AddItem", ctx, mock.MatchedBy(func(item domain.ShoppingListItem) bool {
		return item.ProductID == productID && !item.IsChecked && item.Quantity.Equal(mustDecimal("2"))
	})).Return(nil).Once()

	err := suite.service.AddItem(ctx, listID, productID, mustDecimal("2"))

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestAddItem_ReopensCompletedList() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		IsCompleted:    true,
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: true},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)
	suite.mockListRepo.On("AddItem", ctx, mock.AnythingOfType("domain.ShoppingListItem")).Return(nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return !updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.AddItem(ctx, listID, productID, mustDecimal("1"))

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestAddItem_DuplicateProduct() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)
	suite.mockListRepo.On("AddItem", ctx, mock.AnythingOfType("domain.ShoppingListItem")).Return(apperrors.ErrConflict).Once()

	err := suite.service.AddItem(ctx, listID, productID, mustDecimal("1"))

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("ITEM_ALREADY_EXISTS", bizErr.Code)
}

func (suite *ShoppingListServiceTestSuite) TestAddItem_UnknownProduct() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddItem(ctx, listID, productID, mustDecimal("1"))

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("PRODUCT_NOT_FOUND", bizErr.Code)
	suite.mockListRepo.AssertNotCalled(suite.T(), "AddItem", mock.Anything, mock.Anything)
}

func (suite *ShoppingListServiceTestSuite) TestUpdateItemChecked_LastItemCompletesList() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: uuid.NewString(), Quantity: mustDecimal("1"), IsChecked: true},
			{ShoppingListID: listID, ProductID: productID, Quantity: mustDecimal("3"), IsChecked: false},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.ShoppingListItem) bool {
		return item.ProductID == productID && item.IsChecked
	})).Return(nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateItemChecked(ctx, listID, productID, true)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestUpdateItemChecked_UncheckReopensList() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		IsCompleted:    true,
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: productID, Quantity: mustDecimal("1"), IsChecked: true},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.ShoppingListItem) bool {
		return !item.IsChecked
	})).Return(nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return !updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.UpdateItemChecked(ctx, listID, productID, false)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestUpdateItemChecked_NoStateChangeSkipsListUpdate() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	otherProductID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: productID, Quantity: mustDecimal("1"), IsChecked: false},
			{ShoppingListID: listID, ProductID: otherProductID, Quantity: mustDecimal("1"), IsChecked: false},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.ShoppingListItem")).Return(nil).Once()

	err := suite.service.UpdateItemChecked(ctx, listID, productID, true)

	suite.Require().NoError(err)
	// Another item is still unchecked, so completion did not change.
	suite.mockListRepo.AssertNotCalled(suite.T(), "UpdateShoppingList", mock.Anything, mock.Anything)
}

func (suite *ShoppingListServiceTestSuite) TestUpdateItemChecked_UnknownProductIsItemNotFound() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()

	err := suite.service.UpdateItemChecked(ctx, listID, uuid.NewString(), true)

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	// A product id with no line on the list reads as a missing item; the
	// checked path never consults the catalog.
	suite.Equal("ITEM_NOT_FOUND", bizErr.Code)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID", mock.Anything, mock.Anything)
}

func (suite *ShoppingListServiceTestSuite) TestUpdateItemQuantity_ItemNotOnList() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)

	err := suite.service.UpdateItemQuantity(ctx, listID, productID, mustDecimal("5"))

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("ITEM_NOT_FOUND", bizErr.Code)
}

func (suite *ShoppingListServiceTestSuite) TestRemoveItem_EmptiedListReopens() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		IsCompleted:    true,
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: productID, Quantity: mustDecimal("1"), IsChecked: true},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)
	suite.mockListRepo.On("RemoveItem", ctx, listID, productID).Return(nil).Once()
	// Completion is derived, and an empty list is never complete.
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return !updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.RemoveItem(ctx, listID, productID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestRemoveItem_CompletesListWhenRestChecked() {
	ctx := context.Background()
	listID := uuid.NewString()
	productID := uuid.NewString()
	checkedProductID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Items: []domain.ShoppingListItem{
			{ShoppingListID: listID, ProductID: checkedProductID, Quantity: mustDecimal("1"), IsChecked: true},
			{ShoppingListID: listID, ProductID: productID, Quantity: mustDecimal("1"), IsChecked: false},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.expectProduct(ctx, productID)
	suite.mockListRepo.On("RemoveItem", ctx, listID, productID).Return(nil).Once()
	suite.mockListRepo.On("UpdateShoppingList", ctx, mock.MatchedBy(func(updated domain.ShoppingList) bool {
		return updated.IsCompleted
	})).Return(nil).Once()

	err := suite.service.RemoveItem(ctx, listID, productID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

// --- Membership Tests ---
func (suite *ShoppingListServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	listID := uuid.NewString()
	requesterID := uuid.NewString()
	invitee := &domain.User{UserID: uuid.NewString(), Email: "invitee@example.com"}
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: requesterID, JoinedAt: time.Now()},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, invitee.UserID).Return(invitee, nil).Once()
	suite.mockVerifier.On("AreConnected", ctx, requesterID, invitee.UserID).Return(true, nil).Once()
	suite.mockListRepo.On("AddMember", ctx, mock.MatchedBy(func(member domain.ShoppingListMember) bool {
		return member.ShoppingListID == listID && member.UserID == invitee.UserID
	})).Return(nil).Once()

	err := suite.service.AddMember(ctx, listID, invitee.UserID, requesterID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
	suite.mockVerifier.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestAddMember_NotConnected() {
	ctx := context.Background()
	listID := uuid.NewString()
	requesterID := uuid.NewString()
	invitee := &domain.User{UserID: uuid.NewString()}
	list := &domain.ShoppingList{ShoppingListID: listID, Name: "Groceries"}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, invitee.UserID).Return(invitee, nil).Once()
	suite.mockVerifier.On("AreConnected", ctx, requesterID, invitee.UserID).Return(false, nil).Once()

	err := suite.service.AddMember(ctx, listID, invitee.UserID, requesterID)

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("NO_CONNECTION", bizErr.Code)
	suite.mockListRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything)
}

func (suite *ShoppingListServiceTestSuite) TestAddMember_SelfInvite() {
	ctx := context.Background()
	listID := uuid.NewString()
	requester := &domain.User{UserID: uuid.NewString()}
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: uuid.NewString()},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, requester.UserID).Return(requester, nil).Once()

	err := suite.service.AddMember(ctx, listID, requester.UserID, requester.UserID)

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("INVALID_OPERATION", bizErr.Code)
}

func (suite *ShoppingListServiceTestSuite) TestAddMember_MemberSelfInviteReadsAsAlreadyMember() {
	ctx := context.Background()
	listID := uuid.NewString()
	requester := &domain.User{UserID: uuid.NewString()}
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: requester.UserID},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, requester.UserID).Return(requester, nil).Once()

	err := suite.service.AddMember(ctx, listID, requester.UserID, requester.UserID)

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	// Membership takes precedence over the self-invite rule.
	suite.Equal("MEMBER_ALREADY_EXISTS", bizErr.Code)
}

func (suite *ShoppingListServiceTestSuite) TestAddMember_AlreadyMember() {
	ctx := context.Background()
	listID := uuid.NewString()
	requesterID := uuid.NewString()
	invitee := &domain.User{UserID: uuid.NewString()}
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: requesterID},
			{ShoppingListID: listID, UserID: invitee.UserID},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, invitee.UserID).Return(invitee, nil).Once()

	err := suite.service.AddMember(ctx, listID, invitee.UserID, requesterID)

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("MEMBER_ALREADY_EXISTS", bizErr.Code)
	suite.mockVerifier.AssertNotCalled(suite.T(), "AreConnected", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShoppingListServiceTestSuite) TestLeave_Success() {
	ctx := context.Background()
	listID := uuid.NewString()
	userID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: userID},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()
	suite.mockListRepo.On("RemoveMember", ctx, listID, userID).Return(nil).Once()

	// The last member may leave; the list is simply orphaned.
	err := suite.service.Leave(ctx, listID, userID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *ShoppingListServiceTestSuite) TestLeave_NotAMember() {
	ctx := context.Background()
	listID := uuid.NewString()
	list := &domain.ShoppingList{
		ShoppingListID: listID,
		Name:           "Groceries",
		Members: []domain.ShoppingListMember{
			{ShoppingListID: listID, UserID: uuid.NewString()},
		},
	}

	suite.mockListRepo.On("FindShoppingListByID", ctx, listID).Return(list, nil).Once()

	err := suite.service.Leave(ctx, listID, "outsider-user")

	suite.Require().Error(err)
	bizErr, ok := apperrors.AsBusiness(err)
	suite.Require().True(ok)
	suite.Equal("MEMBER_NOT_FOUND", bizErr.Code)
	suite.mockListRepo.AssertNotCalled(suite.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestShoppingListServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListServiceTestSuite))
}
