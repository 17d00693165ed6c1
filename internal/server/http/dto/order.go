package dto

import "time"

// CheckoutRequest places an order from the current cart. Totals are computed
// server-side; the client supplies only address and payment method.
type CheckoutRequest struct {
	DeliveryAddress AddressPayload `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// CancelOrderRequest optionally explains a cancellation.
type CancelOrderRequest struct {
	Note string `json:"note"`
}

// OrderItemResponse is one snapshotted line of an order.
type OrderItemResponse struct {
	ID                  string  `json:"id"`
	MenuItemID          string  `json:"menuItemId"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// StatusHistoryResponse is one entry of the order's audit trail.
type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID                string                  `json:"id"`
	RestaurantID      string                  `json:"restaurantId"`
	RestaurantName    string                  `json:"restaurantName"`
	Items             []OrderItemResponse     `json:"items"`
	Status            string                  `json:"status"`
	Subtotal          float64                 `json:"subtotal"`
	Tax               float64                 `json:"tax"`
	DeliveryFee       float64                 `json:"deliveryFee"`
	Total             float64                 `json:"total"`
	DeliveryAddress   AddressPayload          `json:"deliveryAddress"`
	PaymentMethod     string                  `json:"paymentMethod"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
	EstimatedDelivery time.Time               `json:"estimatedDelivery"`
	StatusHistory     []StatusHistoryResponse `json:"statusHistory"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Data []OrderResponse `json:"data"`
	Meta Meta            `json:"meta"`
}

// ActiveCountResponse reports the number of in-flight orders.
type ActiveCountResponse struct {
	Count int `json:"count"`
}
