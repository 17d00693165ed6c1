package model

import (
	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
)

// CartLine is one purchasable line in the active cart.
type CartLine struct {
	ItemID              string  `json:"itemId"`
	RestaurantID        string  `json:"restaurantId"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// Cart holds the user's in-progress selection, bound to at most one restaurant.
// Line order is insertion order; pricing does not depend on it.
type Cart struct {
	RestaurantID   string     `json:"restaurantId,omitempty"`
	RestaurantName string     `json:"restaurantName,omitempty"`
	Lines          []CartLine `json:"lines"`
}

// CartSummary aggregates the derived monetary values of a cart.
type CartSummary struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Line returns the line for the given item id, or nil.
func (c *Cart) Line(itemID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}

// SetRestaurant binds the cart to a restaurant. Re-binding a non-empty cart to
// a different restaurant is rejected; the caller must clear the cart first.
func (c *Cart) SetRestaurant(id, name string) error {
	if !c.IsEmpty() && c.RestaurantID != "" && c.RestaurantID != id {
		return domainErrors.ErrRestaurantConflict
	}
	c.RestaurantID = id
	c.RestaurantName = name
	return nil
}

// AddItem merges the menu item into the cart. An existing line for the same
// item gets its quantity incremented; its instructions are overwritten only
// when a non-empty value is supplied. Adding across restaurants is rejected
// rather than silently discarding the current cart.
func (c *Cart) AddItem(item MenuItem, quantity int, instructions string) error {
	if quantity < 1 {
		return domainErrors.ErrInvalidQuantity
	}
	if !item.IsAvailable {
		return domainErrors.ErrItemUnavailable
	}
	if !c.IsEmpty() && c.RestaurantID != item.RestaurantID {
		return domainErrors.ErrRestaurantConflict
	}

	if c.IsEmpty() && c.RestaurantID != item.RestaurantID {
		// Stale binding from SetRestaurant on an emptied cart; the name
		// belongs to the old restaurant, so it is reset here.
		c.RestaurantName = ""
	}
	c.RestaurantID = item.RestaurantID

	if line := c.Line(item.ID); line != nil {
		line.Quantity += quantity
		if instructions != "" {
			line.SpecialInstructions = instructions
		}
		return nil
	}

	c.Lines = append(c.Lines, CartLine{
		ItemID:              item.ID,
		RestaurantID:        item.RestaurantID,
		Name:                item.Name,
		UnitPrice:           item.Price,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
	return nil
}

// RemoveItem deletes the line unconditionally. Emptying the cart clears the
// restaurant binding so a future add from any restaurant succeeds.
func (c *Cart) RemoveItem(itemID string) {
	lines := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}
	c.Lines = lines
	if c.IsEmpty() {
		c.Clear()
	}
}

// UpdateQuantity overwrites the line's quantity; zero or negative behaves
// exactly as RemoveItem. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	if line := c.Line(itemID); line != nil {
		line.Quantity = quantity
	}
}

// UpdateInstructions overwrites special instructions on the matching line.
// Missing lines are a no-op.
func (c *Cart) UpdateInstructions(itemID, instructions string) {
	if line := c.Line(itemID); line != nil {
		line.SpecialInstructions = instructions
	}
}

// Clear empties lines and restaurant binding unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
	c.RestaurantID = ""
	c.RestaurantName = ""
}

// Subtotal derives the unrounded-sum subtotal, rounded to cents.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, line := range c.Lines {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	return Round2(sum)
}

// Summary derives all monetary values for the cart. Tax and total are each
// computed from the subtotal independently so the rounded tax value is never
// compounded into the total.
func (c *Cart) Summary(pricing Pricing) CartSummary {
	subtotal := c.Subtotal()
	tax := Round2(subtotal * pricing.TaxRate)

	deliveryFee := 0.0
	if !c.IsEmpty() {
		deliveryFee = pricing.DeliveryFee
	}

	return CartSummary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       Round2(subtotal + tax + deliveryFee),
		ItemCount:   c.ItemCount(),
	}
}
