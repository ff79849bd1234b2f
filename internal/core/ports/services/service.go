package services

// ServiceContainer holds instances of all the application services. It is
// the entry point handlers use to reach business logic.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Connection   ConnectionSvcFacade
	Product      ProductSvcFacade
	ShoppingList ShoppingListSvcFacade
}
