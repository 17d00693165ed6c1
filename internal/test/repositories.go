package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.Users[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RestaurantRepositoryStub serves a fixed catalog.
type RestaurantRepositoryStub struct {
	Restaurants []model.Restaurant
	ListFn      func(context.Context, model.RestaurantFilters) ([]model.Restaurant, int, error)
	Err         error
}

// List returns configured restaurants or executes the override.
func (s *RestaurantRepositoryStub) List(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filters)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	return s.Restaurants, len(s.Restaurants), nil
}

// GetByID returns a restaurant by identifier or not found.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			return &s.Restaurants[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub serves fixed menu data keyed by restaurant.
type MenuRepositoryStub struct {
	Items      map[string]model.MenuItem
	ByCategory map[string][]model.MenuCategory
	Err        error
}

// Categories returns the configured menu for the restaurant.
func (s *MenuRepositoryStub) Categories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ByCategory[restaurantID], nil
}

// GetItem returns a menu item by identifier or not found.
func (s *MenuRepositoryStub) GetItem(ctx context.Context, itemID string) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[itemID]; ok {
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub persists cart snapshots in-memory and counts calls.
type CartRepositoryStub struct {
	mu        sync.Mutex
	Snapshots map[int64]*model.Cart
	Saves     int
	Deletes   int
	LoadErr   error
	SaveErr   error
}

// NewCartRepositoryStub constructs the stub with an initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Snapshots: make(map[int64]*model.Cart)}
}

// Load returns a copy of the stored snapshot or not found.
func (s *CartRepositoryStub) Load(ctx context.Context, userID int64) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if cart, ok := s.Snapshots[userID]; ok {
		clone := *cart
		clone.Lines = append([]model.CartLine(nil), cart.Lines...)
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save stores a snapshot copy and counts the invocation.
func (s *CartRepositoryStub) Save(ctx context.Context, userID int64, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	clone := *cart
	clone.Lines = append([]model.CartLine(nil), cart.Lines...)
	s.Snapshots[userID] = &clone
	return nil
}

// Delete drops the stored snapshot.
func (s *CartRepositoryStub) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	delete(s.Snapshots, userID)
	return nil
}

// TransitionCall records one ApplyTransition invocation.
type TransitionCall struct {
	OrderID string
	From    model.OrderStatus
	To      model.OrderStatus
	At      time.Time
	Note    string
}

// OrderRepositoryStub stores orders in-memory with compare-and-swap
// transition semantics matching the SQL implementation.
type OrderRepositoryStub struct {
	mu          sync.Mutex
	Orders      map[string]*model.Order
	Transitions []TransitionCall
	CreateErr   error
	Err         error
}

// NewOrderRepositoryStub constructs the stub with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores a copy of the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return s.CreateErr
	}
	clone := *order
	clone.StatusHistory = append([]model.StatusHistoryEntry(nil), order.StatusHistory...)
	s.Orders[order.ID] = &clone
	return nil
}

// GetByID returns a copy of the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := *order
	clone.StatusHistory = append([]model.StatusHistoryEntry(nil), order.StatusHistory...)
	return &clone, nil
}

// ListByUser returns matching orders newest first with pagination.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}

	matched := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		if userID != 0 && order.UserID != userID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		matched = append(matched, *order)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// CountActive counts non-terminal orders for the user.
func (s *OrderRepositoryStub) CountActive(ctx context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	count := 0
	for _, order := range s.Orders {
		if userID != 0 && order.UserID != userID {
			continue
		}
		if !order.Status.IsTerminal() {
			count++
		}
	}
	return count, nil
}

// ApplyTransition updates the order only while it still holds from.
func (s *OrderRepositoryStub) ApplyTransition(ctx context.Context, orderID string, from, to model.OrderStatus, at time.Time, note string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	s.Transitions = append(s.Transitions, TransitionCall{OrderID: orderID, From: from, To: to, At: at, Note: note})

	order, ok := s.Orders[orderID]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	order.UpdatedAt = at
	order.StatusHistory = append(order.StatusHistory, model.StatusHistoryEntry{Status: to, Timestamp: at, Note: note})
	return true, nil
}

// SelectPendingBefore returns pending orders created at or before cutoff.
func (s *OrderRepositoryStub) SelectPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	pending := make([]model.Order, 0)
	for _, order := range s.Orders {
		if order.Status == model.OrderStatusPending && !order.CreatedAt.After(cutoff) {
			pending = append(pending, *order)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}
