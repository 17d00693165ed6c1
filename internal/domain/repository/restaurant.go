package repository

import (
	"context"

	"github.com/bitenow/bitenow/internal/domain/model"
)

// RestaurantRepository provides access to the restaurant catalog.
type RestaurantRepository interface {
	// List returns a page of restaurants matching the filters together with
	// the total match count.
	List(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error)
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
}

// MenuRepository provides access to restaurant menus.
type MenuRepository interface {
	// Categories returns the restaurant's menu grouped by category, in
	// display order.
	Categories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error)
	GetItem(ctx context.Context, itemID string) (*model.MenuItem, error)
}
