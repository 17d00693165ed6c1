package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/server/http/dto"
	"github.com/bitenow/bitenow/internal/usecase"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/user/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), usecase.CheckoutRequest{
		DeliveryAddress: model.Address{
			Street:       req.DeliveryAddress.Street,
			City:         req.DeliveryAddress.City,
			State:        req.DeliveryAddress.State,
			ZipCode:      req.DeliveryAddress.ZipCode,
			Instructions: req.DeliveryAddress.Instructions,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyCart) {
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	h.list(c, CurrentUserID(c))
}

// Get handles GET /api/user/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Get(c.Request.Context(), c.Param("id"), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel handles POST /api/user/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	order, err := h.facade.Cancel(c.Request.Context(), c.Param("id"), CurrentUserID(c), req.Note)
	if err != nil {
		writeTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ActiveCount handles GET /api/user/orders/active/count.
func (h *OrderHandler) ActiveCount(c *gin.Context) {
	h.activeCount(c, CurrentUserID(c))
}

func (h *OrderHandler) list(c *gin.Context, userID int64) {
	status := model.OrderStatus(c.Query("status"))
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	orders, total, err := h.facade.List(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Data: data, Meta: dto.NewMeta(page, limit, total)})
}

func (h *OrderHandler) activeCount(c *gin.Context, userID int64) {
	count, err := h.facade.ActiveCount(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ActiveCountResponse{Count: count})
}

// AdminOrderHandler manages the admin order surface. All endpoints run behind
// AdminRequired and see every user's orders.
type AdminOrderHandler struct {
	OrderHandler
}

// NewAdminOrderHandler constructs AdminOrderHandler.
func NewAdminOrderHandler(facade OrderFacade) *AdminOrderHandler {
	return &AdminOrderHandler{OrderHandler{facade: facade}}
}

// List handles GET /api/admin/orders.
func (h *AdminOrderHandler) List(c *gin.Context) {
	h.list(c, 0)
}

// Advance handles POST /api/admin/orders/:id/advance.
func (h *AdminOrderHandler) Advance(c *gin.Context) {
	order, err := h.facade.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ActiveCount handles GET /api/admin/orders/active/count.
func (h *AdminOrderHandler) ActiveCount(c *gin.Context) {
	h.activeCount(c, 0)
}

func writeTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrOrderTerminal),
		errors.Is(err, domainErrors.ErrOrderNotCancellable),
		errors.Is(err, domainErrors.ErrTransitionConflict):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:                  item.ID,
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	history := make([]dto.StatusHistoryResponse, 0, len(order.StatusHistory))
	for _, entry := range order.StatusHistory {
		history = append(history, dto.StatusHistoryResponse{
			Status:    string(entry.Status),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return dto.OrderResponse{
		ID:             order.ID,
		RestaurantID:   order.RestaurantID,
		RestaurantName: order.RestaurantName,
		Items:          items,
		Status:         string(order.Status),
		Subtotal:       order.Subtotal,
		Tax:            order.Tax,
		DeliveryFee:    order.DeliveryFee,
		Total:          order.Total,
		DeliveryAddress: dto.AddressPayload{
			Street:       order.DeliveryAddress.Street,
			City:         order.DeliveryAddress.City,
			State:        order.DeliveryAddress.State,
			ZipCode:      order.DeliveryAddress.ZipCode,
			Instructions: order.DeliveryAddress.Instructions,
		},
		PaymentMethod:     order.PaymentMethod,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
		StatusHistory:     history,
	}
}
