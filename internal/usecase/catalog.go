package usecase

import (
	"context"

	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

// CatalogUseCase serves the browsable restaurant catalog and menus.
type CatalogUseCase struct {
	restaurants repository.RestaurantRepository
	menus       repository.MenuRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(restaurants repository.RestaurantRepository, menus repository.MenuRepository) *CatalogUseCase {
	return &CatalogUseCase{restaurants: restaurants, menus: menus}
}

// Restaurants returns a page of restaurants plus the total match count.
func (u *CatalogUseCase) Restaurants(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	return u.restaurants.List(ctx, filters)
}

// Restaurant returns one restaurant by id.
func (u *CatalogUseCase) Restaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	return u.restaurants.GetByID(ctx, id)
}

// Menu returns a restaurant's menu grouped by category. The restaurant must
// exist; an unknown id reads as not found rather than an empty menu.
func (u *CatalogUseCase) Menu(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	if _, err := u.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return u.menus.Categories(ctx, restaurantID)
}
