package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at wiring time.
type RepositoryProvider struct {
	UserRepo         UserRepository
	RefreshTokenRepo RefreshTokenRepository
	ConnectionRepo   ConnectionRepository
	ProductRepo      ProductReader
	ShoppingListRepo ShoppingListRepository
}
