package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/server/http/dto"
)

// RestaurantHandler serves the restaurant catalog.
type RestaurantHandler struct {
	facade CatalogFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade CatalogFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	filters := model.RestaurantFilters{
		Search:  c.Query("search"),
		Cuisine: c.Query("cuisine"),
		SortBy:  c.Query("sort"),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 10),
	}

	restaurants, total, err := h.facade.Restaurants(c.Request.Context(), filters)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	data := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		data = append(data, toRestaurantResponse(r))
	}

	c.JSON(http.StatusOK, dto.RestaurantListResponse{
		Data: data,
		Meta: dto.NewMeta(filters.Page, filters.Limit, total),
	})
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurant, err := h.facade.Restaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(*restaurant))
}

// Menu handles GET /api/restaurants/:id/menu.
func (h *RestaurantHandler) Menu(c *gin.Context) {
	categories, err := h.facade.Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.MenuCategoryResponse, 0, len(categories))
	for _, category := range categories {
		items := make([]dto.MenuItemResponse, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, dto.MenuItemResponse{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Image:       item.Image,
				IsAvailable: item.IsAvailable,
				IsPopular:   item.IsPopular,
			})
		}
		resp = append(resp, dto.MenuCategoryResponse{ID: category.ID, Name: category.Name, Items: items})
	}
	c.JSON(http.StatusOK, resp)
}

func toRestaurantResponse(r model.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Image:        r.Image,
		CoverImage:   r.CoverImage,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		DeliveryTime: r.DeliveryTime,
		DeliveryFee:  r.DeliveryFee,
		MinimumOrder: r.MinimumOrder,
		IsOpen:       r.IsOpen,
		Address: dto.AddressPayload{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
		},
	}
}
