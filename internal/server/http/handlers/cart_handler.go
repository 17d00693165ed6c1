package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, summary := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	c.JSON(http.StatusOK, toCartResponse(cart, summary))
}

// AddItem handles POST /api/user/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	err := h.facade.AddItem(c.Request.Context(), userID, req.ItemID, req.Quantity, req.SpecialInstructions, req.ReplaceCart)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrRestaurantConflict):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInvalidQuantity), errors.Is(err, domainErrors.ErrItemUnavailable):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	cart, summary := h.facade.Cart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, toCartResponse(cart, summary))
}

// UpdateItem handles PATCH /api/user/cart/items/:itemID.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	itemID := c.Param("itemID")
	if req.Quantity != nil {
		h.facade.UpdateQuantity(c.Request.Context(), userID, itemID, *req.Quantity)
	}
	if req.SpecialInstructions != nil {
		h.facade.UpdateInstructions(c.Request.Context(), userID, itemID, *req.SpecialInstructions)
	}

	cart, summary := h.facade.Cart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, toCartResponse(cart, summary))
}

// RemoveItem handles DELETE /api/user/cart/items/:itemID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := CurrentUserID(c)
	h.facade.RemoveItem(c.Request.Context(), userID, c.Param("itemID"))

	cart, summary := h.facade.Cart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, toCartResponse(cart, summary))
}

// Clear handles DELETE /api/user/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.facade.Clear(c.Request.Context(), CurrentUserID(c))
	c.Status(http.StatusNoContent)
}

// SetRestaurant handles PUT /api/user/cart/restaurant.
func (h *CartHandler) SetRestaurant(c *gin.Context) {
	var req dto.SetRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.SetRestaurant(c.Request.Context(), CurrentUserID(c), req.RestaurantID, req.Name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrRestaurantConflict) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func toCartResponse(cart model.Cart, summary model.CartSummary) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, dto.CartLineResponse{
			ItemID:              line.ItemID,
			Name:                line.Name,
			UnitPrice:           line.UnitPrice,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	return dto.CartResponse{
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Items:          items,
		Summary: dto.CartSummaryResponse{
			Subtotal:    summary.Subtotal,
			Tax:         summary.Tax,
			DeliveryFee: summary.DeliveryFee,
			Total:       summary.Total,
			ItemCount:   summary.ItemCount,
		},
	}
}
