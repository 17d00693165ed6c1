package repository

import (
	"context"
	"time"

	"github.com/bitenow/bitenow/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// ListByUser returns the user's orders newest first, optionally filtered
	// by status, along with the total match count for pagination. userID 0
	// lists orders across all users.
	ListByUser(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error)
	// CountActive counts orders in non-terminal statuses. userID 0 counts
	// across all users.
	CountActive(ctx context.Context, userID int64) (int, error)
	// ApplyTransition persists a status change with compare-and-set
	// semantics: the update applies only while the order is still in from,
	// and appends the matching history entry in the same transaction. The
	// returned bool reports whether the transition was applied.
	ApplyTransition(ctx context.Context, orderID string, from, to model.OrderStatus, at time.Time, note string) (bool, error)
	// SelectPendingBefore returns orders still pending that were created at
	// or before cutoff, oldest first.
	SelectPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
