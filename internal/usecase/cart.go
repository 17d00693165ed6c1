package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

// CartUseCase owns the live carts. The in-memory cart is the source of truth
// for a running session; every mutation is written through to the snapshot
// store best-effort, and snapshot failures are logged, never surfaced.
type CartUseCase struct {
	menus     repository.MenuRepository
	snapshots repository.CartRepository
	pricing   model.Pricing
	logger    *slog.Logger

	mu    sync.Mutex
	carts map[int64]*model.Cart
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(menus repository.MenuRepository, snapshots repository.CartRepository, pricing model.Pricing, logger *slog.Logger) *CartUseCase {
	return &CartUseCase{
		menus:     menus,
		snapshots: snapshots,
		pricing:   pricing,
		logger:    logger,
		carts:     make(map[int64]*model.Cart),
	}
}

// Cart returns a copy of the user's cart and its derived summary.
func (u *CartUseCase) Cart(ctx context.Context, userID int64) (model.Cart, model.CartSummary) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	return cloneCart(cart), cart.Summary(u.pricing)
}

// SetRestaurant binds the user's cart to a restaurant.
func (u *CartUseCase) SetRestaurant(ctx context.Context, userID int64, restaurantID, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	if err := cart.SetRestaurant(restaurantID, name); err != nil {
		return err
	}
	u.persist(ctx, userID, cart)
	return nil
}

// AddItem resolves the menu item and merges it into the user's cart. A
// cross-restaurant add fails with ErrRestaurantConflict unless replace is
// set, in which case the existing cart is discarded first.
func (u *CartUseCase) AddItem(ctx context.Context, userID int64, itemID string, quantity int, instructions string, replace bool) error {
	if quantity < 1 {
		return domainErrors.ErrInvalidQuantity
	}

	item, err := u.menus.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	if err := cart.AddItem(*item, quantity, instructions); err != nil {
		if !errors.Is(err, domainErrors.ErrRestaurantConflict) || !replace {
			return err
		}
		cart.Clear()
		if err := cart.AddItem(*item, quantity, instructions); err != nil {
			return err
		}
	}
	u.persist(ctx, userID, cart)
	return nil
}

// RemoveItem deletes a line from the user's cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID int64, itemID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	cart.RemoveItem(itemID)
	u.persist(ctx, userID, cart)
}

// UpdateQuantity overwrites a line's quantity; zero or negative removes it.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	cart.UpdateQuantity(itemID, quantity)
	u.persist(ctx, userID, cart)
}

// UpdateInstructions overwrites a line's special instructions.
func (u *CartUseCase) UpdateInstructions(ctx context.Context, userID int64, itemID, instructions string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	cart.UpdateInstructions(itemID, instructions)
	u.persist(ctx, userID, cart)
}

// Clear empties the user's cart and its snapshot.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cart(ctx, userID)
	cart.Clear()
	u.persist(ctx, userID, cart)
}

// Snapshot implements CartSource for checkout.
func (u *CartUseCase) Snapshot(ctx context.Context, userID int64) (model.Cart, model.CartSummary) {
	return u.Cart(ctx, userID)
}

// cart returns the live cart for the user, restoring it from the snapshot
// store on first access. Callers must hold the mutex.
func (u *CartUseCase) cart(ctx context.Context, userID int64) *model.Cart {
	if cart, ok := u.carts[userID]; ok {
		return cart
	}

	cart := &model.Cart{}
	stored, err := u.snapshots.Load(ctx, userID)
	switch {
	case err == nil:
		cart = stored
	case !errors.Is(err, domainErrors.ErrNotFound):
		u.logger.Warn("cart snapshot load failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	u.carts[userID] = cart
	return cart
}

// persist writes the cart through to the snapshot store. Failures degrade
// silently: the in-memory cart stays authoritative for the session.
func (u *CartUseCase) persist(ctx context.Context, userID int64, cart *model.Cart) {
	var err error
	if cart.IsEmpty() {
		err = u.snapshots.Delete(ctx, userID)
	} else {
		err = u.snapshots.Save(ctx, userID, cart)
	}
	if err != nil {
		u.logger.Warn("cart snapshot save failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
}

func cloneCart(cart *model.Cart) model.Cart {
	clone := *cart
	clone.Lines = append([]model.CartLine(nil), cart.Lines...)
	return clone
}
