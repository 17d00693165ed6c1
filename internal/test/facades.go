package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/usecase"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	RestaurantsFn func(context.Context, model.RestaurantFilters) ([]model.Restaurant, int, error)
	RestaurantFn  func(context.Context, string) (*model.Restaurant, error)
	MenuFn        func(context.Context, string) ([]model.MenuCategory, error)
}

// Restaurants delegates to the override or returns a single restaurant.
func (s CatalogFacadeStub) Restaurants(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error) {
	if s.RestaurantsFn != nil {
		return s.RestaurantsFn(ctx, filters)
	}
	return []model.Restaurant{{ID: "r-1", Name: "Stub Diner"}}, 1, nil
}

// Restaurant returns a predefined restaurant.
func (s CatalogFacadeStub) Restaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	if s.RestaurantFn != nil {
		return s.RestaurantFn(ctx, id)
	}
	return &model.Restaurant{ID: id, Name: "Stub Diner"}, nil
}

// Menu returns a predefined menu.
func (s CatalogFacadeStub) Menu(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx, restaurantID)
	}
	return []model.MenuCategory{{ID: "c-1", Name: "Mains"}}, nil
}

// CartFacadeStub simulates cart operations for HTTP layer tests.
type CartFacadeStub struct {
	CartFn               func(context.Context, int64) (model.Cart, model.CartSummary)
	SetRestaurantFn      func(context.Context, int64, string, string) error
	AddItemFn            func(context.Context, int64, string, int, string, bool) error
	RemoveItemFn         func(context.Context, int64, string)
	UpdateQuantityFn     func(context.Context, int64, string, int)
	UpdateInstructionsFn func(context.Context, int64, string, string)
	ClearFn              func(context.Context, int64)
}

// Cart returns the configured cart state.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (model.Cart, model.CartSummary) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return model.Cart{}, model.CartSummary{}
}

// SetRestaurant delegates to the override when provided.
func (s CartFacadeStub) SetRestaurant(ctx context.Context, userID int64, restaurantID, name string) error {
	if s.SetRestaurantFn != nil {
		return s.SetRestaurantFn(ctx, userID, restaurantID, name)
	}
	return nil
}

// AddItem delegates to the override when provided.
func (s CartFacadeStub) AddItem(ctx context.Context, userID int64, itemID string, quantity int, instructions string, replace bool) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, userID, itemID, quantity, instructions, replace)
	}
	return nil
}

// RemoveItem delegates to the override when provided.
func (s CartFacadeStub) RemoveItem(ctx context.Context, userID int64, itemID string) {
	if s.RemoveItemFn != nil {
		s.RemoveItemFn(ctx, userID, itemID)
	}
}

// UpdateQuantity delegates to the override when provided.
func (s CartFacadeStub) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) {
	if s.UpdateQuantityFn != nil {
		s.UpdateQuantityFn(ctx, userID, itemID, quantity)
	}
}

// UpdateInstructions delegates to the override when provided.
func (s CartFacadeStub) UpdateInstructions(ctx context.Context, userID int64, itemID, instructions string) {
	if s.UpdateInstructionsFn != nil {
		s.UpdateInstructionsFn(ctx, userID, itemID, instructions)
	}
}

// Clear delegates to the override when provided.
func (s CartFacadeStub) Clear(ctx context.Context, userID int64) {
	if s.ClearFn != nil {
		s.ClearFn(ctx, userID)
	}
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn    func(context.Context, int64, usecase.CheckoutRequest) (*model.Order, error)
	GetFn         func(context.Context, string, int64) (*model.Order, error)
	ListFn        func(context.Context, int64, model.OrderStatus, int, int) ([]model.Order, int, error)
	ActiveCountFn func(context.Context, int64) (int, error)
	AdvanceFn     func(context.Context, string) (*model.Order, error)
	CancelFn      func(context.Context, string, int64, string) (*model.Order, error)
}

// Checkout delegates to the override or returns a pending order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, req usecase.CheckoutRequest) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, req)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending}, nil
}

// Get returns a predefined order.
func (s OrderFacadeStub) Get(ctx context.Context, orderID string, userID int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPending}, nil
}

// List returns predefined orders.
func (s OrderFacadeStub) List(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, status, page, limit)
	}
	return []model.Order{{ID: "order-1", UserID: userID}}, 1, nil
}

// ActiveCount returns a predefined count.
func (s OrderFacadeStub) ActiveCount(ctx context.Context, userID int64) (int, error) {
	if s.ActiveCountFn != nil {
		return s.ActiveCountFn(ctx, userID)
	}
	return 0, nil
}

// Advance delegates to the override when provided.
func (s OrderFacadeStub) Advance(ctx context.Context, orderID string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusConfirmed}, nil
}

// Cancel delegates to the override when provided.
func (s OrderFacadeStub) Cancel(ctx context.Context, orderID string, userID int64, note string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, userID, note)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// ConfirmCall records one ConfirmPending invocation.
type ConfirmCall struct {
	OrderID string
}

// WorkerFacadeStub mimics worker interactions with the order facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Order
	PendingFn      func(context.Context, time.Time, int) ([]model.Order, error)
	ConfirmFn      func(context.Context, string) (bool, error)
	Confirmed      []ConfirmCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingOrders returns batches from the configured queue.
func (s *WorkerFacadeStub) PendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, cutoff, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ConfirmPending records confirmation requests.
func (s *WorkerFacadeStub) ConfirmPending(ctx context.Context, orderID string) (bool, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmed = append(s.Confirmed, ConfirmCall{OrderID: orderID})
	return true, nil
}

// BiteNowFacadeStub aggregates facade dependencies for HTTP layer tests.
type BiteNowFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
}
