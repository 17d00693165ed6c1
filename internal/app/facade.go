package app

import (
	"context"
	"time"

	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
	"github.com/bitenow/bitenow/internal/usecase"
)

// BiteNowFacade aggregates the use cases behind a single application surface
// consumed by the HTTP layer and the background worker.
type BiteNowFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	carts   *usecase.CartUseCase
	orders  *usecase.OrderUseCase
	repo    repository.OrderRepository
}

func NewBiteNowFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, carts *usecase.CartUseCase, orders *usecase.OrderUseCase, repo repository.OrderRepository) *BiteNowFacade {
	return &BiteNowFacade{auth: auth, catalog: catalog, carts: carts, orders: orders, repo: repo}
}

// --- Auth ---

func (f *BiteNowFacade) Register(ctx context.Context, email, password, name, phone string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, name, phone)
}

func (f *BiteNowFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *BiteNowFacade) ParseToken(token string) (int64, model.UserRole, error) {
	return f.auth.ParseToken(token)
}

func (f *BiteNowFacade) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

// --- Catalog ---

func (f *BiteNowFacade) Restaurants(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error) {
	return f.catalog.Restaurants(ctx, filters)
}

func (f *BiteNowFacade) Restaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	return f.catalog.Restaurant(ctx, id)
}

func (f *BiteNowFacade) Menu(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	return f.catalog.Menu(ctx, restaurantID)
}

// --- Cart ---

func (f *BiteNowFacade) Cart(ctx context.Context, userID int64) (model.Cart, model.CartSummary) {
	return f.carts.Cart(ctx, userID)
}

func (f *BiteNowFacade) SetRestaurant(ctx context.Context, userID int64, restaurantID, name string) error {
	return f.carts.SetRestaurant(ctx, userID, restaurantID, name)
}

func (f *BiteNowFacade) AddItem(ctx context.Context, userID int64, itemID string, quantity int, instructions string, replace bool) error {
	return f.carts.AddItem(ctx, userID, itemID, quantity, instructions, replace)
}

func (f *BiteNowFacade) RemoveItem(ctx context.Context, userID int64, itemID string) {
	f.carts.RemoveItem(ctx, userID, itemID)
}

func (f *BiteNowFacade) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) {
	f.carts.UpdateQuantity(ctx, userID, itemID, quantity)
}

func (f *BiteNowFacade) UpdateInstructions(ctx context.Context, userID int64, itemID, instructions string) {
	f.carts.UpdateInstructions(ctx, userID, itemID, instructions)
}

func (f *BiteNowFacade) Clear(ctx context.Context, userID int64) {
	f.carts.Clear(ctx, userID)
}

// --- Orders ---

func (f *BiteNowFacade) Checkout(ctx context.Context, userID int64, req usecase.CheckoutRequest) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID, req)
}

func (f *BiteNowFacade) Get(ctx context.Context, orderID string, userID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, userID)
}

func (f *BiteNowFacade) List(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error) {
	return f.orders.List(ctx, userID, status, page, limit)
}

func (f *BiteNowFacade) ActiveCount(ctx context.Context, userID int64) (int, error) {
	return f.orders.ActiveCount(ctx, userID)
}

func (f *BiteNowFacade) Advance(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Advance(ctx, orderID)
}

func (f *BiteNowFacade) Cancel(ctx context.Context, orderID string, userID int64, note string) (*model.Order, error) {
	return f.orders.Cancel(ctx, orderID, userID, note)
}

// --- Worker ---

func (f *BiteNowFacade) PendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return f.repo.SelectPendingBefore(ctx, cutoff, limit)
}

func (f *BiteNowFacade) ConfirmPending(ctx context.Context, orderID string) (bool, error) {
	return f.orders.ConfirmPending(ctx, orderID)
}
