package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

const estimatedDeliveryWindow = 45 * time.Minute

// CartSource exposes the cart operations checkout needs.
type CartSource interface {
	Snapshot(ctx context.Context, userID int64) (model.Cart, model.CartSummary)
	Clear(ctx context.Context, userID int64)
}

// CheckoutRequest carries the caller-supplied part of an order. Monetary
// totals are always recomputed from the cart, never taken from the client.
type CheckoutRequest struct {
	DeliveryAddress model.Address
	PaymentMethod   string
}

// OrderUseCase encapsulates checkout and the order lifecycle.
type OrderUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	cart        CartSource
	now         func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, restaurants repository.RestaurantRepository, cart CartSource) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		restaurants: restaurants,
		cart:        cart,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Checkout snapshots the user's cart into an immutable pending order,
// persists it, and clears the cart. The cart must be non-empty.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, req CheckoutRequest) (*model.Order, error) {
	cart, summary := u.cart.Snapshot(ctx, userID)
	if cart.IsEmpty() {
		return nil, domainErrors.ErrEmptyCart
	}

	restaurantName := cart.RestaurantName
	if restaurantName == "" {
		if restaurant, err := u.restaurants.GetByID(ctx, cart.RestaurantID); err == nil {
			restaurantName = restaurant.Name
		}
	}

	now := u.now()
	order := &model.Order{
		ID:                uuid.NewString(),
		UserID:            userID,
		RestaurantID:      cart.RestaurantID,
		RestaurantName:    restaurantName,
		Items:             snapshotItems(cart.Lines),
		Status:            model.OrderStatusPending,
		Subtotal:          summary.Subtotal,
		Tax:               summary.Tax,
		DeliveryFee:       summary.DeliveryFee,
		Total:             summary.Total,
		DeliveryAddress:   req.DeliveryAddress,
		PaymentMethod:     req.PaymentMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
		StatusHistory:     []model.StatusHistoryEntry{{Status: model.OrderStatusPending, Timestamp: now}},
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	u.cart.Clear(ctx, userID)
	return order, nil
}

// Get returns an order. A non-zero userID restricts access to the owner;
// foreign orders read as not found.
func (u *OrderUseCase) Get(ctx context.Context, orderID string, userID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if userID != 0 && order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// List returns a page of orders newest first. userID 0 lists all users'
// orders (admin view); status "" disables status filtering.
func (u *OrderUseCase) List(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return u.orders.ListByUser(ctx, userID, status, page, limit)
}

// ActiveCount counts the user's non-terminal orders; userID 0 counts all.
func (u *OrderUseCase) ActiveCount(ctx context.Context, userID int64) (int, error) {
	return u.orders.CountActive(ctx, userID)
}

// Advance moves the order one step along the happy path. The persisted
// transition is compare-and-set, so a concurrent transition surfaces as
// ErrTransitionConflict rather than being overwritten.
func (u *OrderUseCase) Advance(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if err := order.Advance(u.now()); err != nil {
		return nil, err
	}

	return u.applyTransition(ctx, order, from)
}

// Cancel cancels the order on the customer's or admin's behalf. A non-zero
// userID restricts cancellation to the order's owner.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID string, userID int64, note string) (*model.Order, error) {
	order, err := u.Get(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	if note == "" {
		note = "Cancelled by customer"
	}

	from := order.Status
	if err := order.Cancel(u.now(), note); err != nil {
		return nil, err
	}

	return u.applyTransition(ctx, order, from)
}

// ConfirmPending applies the automatic pending-to-confirmed transition. The
// compare-and-set guard makes it a no-op when the order has already moved on,
// so a user- or admin-driven transition is never overwritten.
func (u *OrderUseCase) ConfirmPending(ctx context.Context, orderID string) (bool, error) {
	return u.orders.ApplyTransition(ctx, orderID, model.OrderStatusPending, model.OrderStatusConfirmed, u.now(), "")
}

func (u *OrderUseCase) applyTransition(ctx context.Context, order *model.Order, from model.OrderStatus) (*model.Order, error) {
	entry := order.StatusHistory[len(order.StatusHistory)-1]
	applied, err := u.orders.ApplyTransition(ctx, order.ID, from, order.Status, entry.Timestamp, entry.Note)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domainErrors.ErrTransitionConflict
	}
	return order, nil
}

func snapshotItems(lines []model.CartLine) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			ID:                  uuid.NewString(),
			MenuItemID:          line.ItemID,
			Name:                line.Name,
			UnitPrice:           line.UnitPrice,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	return items
}
