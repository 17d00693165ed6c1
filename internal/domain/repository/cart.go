package repository

import (
	"context"

	"github.com/bitenow/bitenow/internal/domain/model"
)

// CartRepository persists cart snapshots keyed by user. The in-memory cart is
// authoritative for a running session; these snapshots exist to survive
// restarts, so callers treat Save failures as non-fatal.
type CartRepository interface {
	// Load returns the stored snapshot, or ErrNotFound when none exists.
	Load(ctx context.Context, userID int64) (*model.Cart, error)
	Save(ctx context.Context, userID int64, cart *model.Cart) error
	Delete(ctx context.Context, userID int64) error
}
