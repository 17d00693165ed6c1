package model

import (
	"time"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
)

// OrderItem is a snapshot of one cart line at checkout time, immune to later
// cart mutation.
type OrderItem struct {
	ID                  string
	MenuItemID          string
	Name                string
	UnitPrice           float64
	Quantity            int
	SpecialInstructions string
}

// StatusHistoryEntry is one record in an order's append-only audit trail.
type StatusHistoryEntry struct {
	Status    OrderStatus
	Timestamp time.Time
	Note      string
}

// Order is the immutable record of a placed transaction. Only Status,
// UpdatedAt and StatusHistory change after creation, and never once a
// terminal status is reached.
type Order struct {
	ID                string
	UserID            int64
	RestaurantID      string
	RestaurantName    string
	Items             []OrderItem
	Status            OrderStatus
	Subtotal          float64
	Tax               float64
	DeliveryFee       float64
	Total             float64
	DeliveryAddress   Address
	PaymentMethod     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery time.Time
	StatusHistory     []StatusHistoryEntry
}

// ItemCount returns the total quantity across the order's items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Advance moves the order one step along the happy path, appending exactly
// one history entry. Terminal orders are rejected.
func (o *Order) Advance(now time.Time) error {
	next, ok := o.Status.Next()
	if !ok {
		return domainErrors.ErrOrderTerminal
	}
	o.applyTransition(next, now, "")
	return nil
}

// Cancel transitions the order to cancelled with a note. Orders past the
// confirmed stage, and terminal orders, are rejected.
func (o *Order) Cancel(now time.Time, note string) error {
	if o.Status.IsTerminal() {
		return domainErrors.ErrOrderTerminal
	}
	if !o.Status.Cancellable() {
		return domainErrors.ErrOrderNotCancellable
	}
	o.applyTransition(OrderStatusCancelled, now, note)
	return nil
}

func (o *Order) applyTransition(status OrderStatus, now time.Time, note string) {
	o.Status = status
	o.UpdatedAt = now
	o.StatusHistory = append(o.StatusHistory, StatusHistoryEntry{
		Status:    status,
		Timestamp: now,
		Note:      note,
	})
}
