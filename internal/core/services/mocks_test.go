package services_test

import (
	"context"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByFollowID(ctx context.Context, followID string) (*domain.User, error) {
	args := m.Called(ctx, followID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, token)
	var refreshToken *domain.RefreshToken
	if args.Get(0) != nil {
		refreshToken = args.Get(0).(*domain.RefreshToken)
	}
	return refreshToken, args.Error(1)
}

func (m *MockRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, tokenID string, revokedAt time.Time) error {
	args := m.Called(ctx, tokenID, revokedAt)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeAllUserTokens(ctx context.Context, userID string, revokedAt time.Time) error {
	args := m.Called(ctx, userID, revokedAt)
	return args.Error(0)
}

// --- Mock ConnectionRepository ---
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) FindConnectionByID(ctx context.Context, connectionID string) (*domain.UserConnection, error) {
	args := m.Called(ctx, connectionID)
	var connection *domain.UserConnection
	if args.Get(0) != nil {
		connection = args.Get(0).(*domain.UserConnection)
	}
	return connection, args.Error(1)
}

func (m *MockConnectionRepository) FindConnectionBetween(ctx context.Context, userAID, userBID string) (*domain.UserConnection, error) {
	args := m.Called(ctx, userAID, userBID)
	var connection *domain.UserConnection
	if args.Get(0) != nil {
		connection = args.Get(0).(*domain.UserConnection)
	}
	return connection, args.Error(1)
}

func (m *MockConnectionRepository) ListConnectionsByUserID(ctx context.Context, userID string) ([]domain.UserConnection, error) {
	args := m.Called(ctx, userID)
	var connections []domain.UserConnection
	if args.Get(0) != nil {
		connections = args.Get(0).([]domain.UserConnection)
	}
	return connections, args.Error(1)
}

func (m *MockConnectionRepository) AreUsersConnected(ctx context.Context, userAID, userBID string) (bool, error) {
	args := m.Called(ctx, userAID, userBID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnectionRepository) SaveConnection(ctx context.Context, connection domain.UserConnection) error {
	args := m.Called(ctx, connection)
	return args.Error(0)
}

func (m *MockConnectionRepository) DeleteConnection(ctx context.Context, connectionID string) error {
	args := m.Called(ctx, connectionID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	args := m.Called(ctx, name)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

// --- Mock ShoppingListRepository ---
type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) FindShoppingListByID(ctx context.Context, shoppingListID string) (*domain.ShoppingList, error) {
	args := m.Called(ctx, shoppingListID)
	var list *domain.ShoppingList
	if args.Get(0) != nil {
		list = args.Get(0).(*domain.ShoppingList)
	}
	return list, args.Error(1)
}

func (m *MockShoppingListRepository) ListShoppingListsByUserID(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	args := m.Called(ctx, userID)
	var lists []domain.ShoppingList
	if args.Get(0) != nil {
		lists = args.Get(0).([]domain.ShoppingList)
	}
	return lists, args.Error(1)
}

func (m *MockShoppingListRepository) CreateShoppingList(ctx context.Context, list domain.ShoppingList, creator domain.ShoppingListMember) error {
	args := m.Called(ctx, list, creator)
	return args.Error(0)
}

func (m *MockShoppingListRepository) UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockShoppingListRepository) DeleteShoppingList(ctx context.Context, shoppingListID string) error {
	args := m.Called(ctx, shoppingListID)
	return args.Error(0)
}

func (m *MockShoppingListRepository) AddMember(ctx context.Context, member domain.ShoppingListMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockShoppingListRepository) RemoveMember(ctx context.Context, shoppingListID, userID string) error {
	args := m.Called(ctx, shoppingListID, userID)
	return args.Error(0)
}

func (m *MockShoppingListRepository) AddItem(ctx context.Context, item domain.ShoppingListItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShoppingListRepository) UpdateItem(ctx context.Context, item domain.ShoppingListItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShoppingListRepository) RemoveItem(ctx context.Context, shoppingListID, productID string) error {
	args := m.Called(ctx, shoppingListID, productID)
	return args.Error(0)
}

// --- Mock ConnectionVerifier ---
type MockConnectionVerifier struct {
	mock.Mock
}

func (m *MockConnectionVerifier) AreConnected(ctx context.Context, userAID, userBID string) (bool, error) {
	args := m.Called(ctx, userAID, userBID)
	return args.Bool(0), args.Error(1)
}

// mustDecimal parses a decimal literal for test fixtures.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
