package handlers

import (
	"context"

	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, name, phone string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, model.UserRole, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade exposes the restaurant catalog.
type CatalogFacade interface {
	Restaurants(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error)
	Restaurant(ctx context.Context, id string) (*model.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]model.MenuCategory, error)
}

// CartFacade exposes cart operations for the authenticated user.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (model.Cart, model.CartSummary)
	SetRestaurant(ctx context.Context, userID int64, restaurantID, name string) error
	AddItem(ctx context.Context, userID int64, itemID string, quantity int, instructions string, replace bool) error
	RemoveItem(ctx context.Context, userID int64, itemID string)
	UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int)
	UpdateInstructions(ctx context.Context, userID int64, itemID, instructions string)
	Clear(ctx context.Context, userID int64)
}

// OrderFacade encapsulates checkout and the order lifecycle.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, req usecase.CheckoutRequest) (*model.Order, error)
	Get(ctx context.Context, orderID string, userID int64) (*model.Order, error)
	List(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error)
	ActiveCount(ctx context.Context, userID int64) (int, error)
	Advance(ctx context.Context, orderID string) (*model.Order, error)
	Cancel(ctx context.Context, orderID string, userID int64, note string) (*model.Order, error)
}

// BiteNowFacade aggregates the full set of operations used across handlers.
type BiteNowFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
}
