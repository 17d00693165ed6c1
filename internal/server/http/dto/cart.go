package dto

// AddCartItemRequest describes the add-to-cart payload. ReplaceCart makes a
// cross-restaurant add discard the current cart instead of failing.
type AddCartItemRequest struct {
	ItemID              string `json:"itemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
	ReplaceCart         bool   `json:"replaceCart"`
}

// UpdateCartItemRequest patches one cart line. Nil fields are left untouched.
type UpdateCartItemRequest struct {
	Quantity            *int    `json:"quantity"`
	SpecialInstructions *string `json:"specialInstructions"`
}

// SetRestaurantRequest binds the cart to a restaurant ahead of the first add.
type SetRestaurantRequest struct {
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
}

// CartLineResponse is one line of the active cart.
type CartLineResponse struct {
	ItemID              string  `json:"itemId"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// CartSummaryResponse carries the derived monetary values.
type CartSummaryResponse struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}

// CartResponse is the full cart state with its summary.
type CartResponse struct {
	RestaurantID   string              `json:"restaurantId,omitempty"`
	RestaurantName string              `json:"restaurantName,omitempty"`
	Items          []CartLineResponse  `json:"items"`
	Summary        CartSummaryResponse `json:"summary"`
}
