package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRestaurantConflict  = errors.New("cart is bound to a different restaurant")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrItemUnavailable     = errors.New("menu item is unavailable")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOrderTerminal       = errors.New("order is in a terminal status")
	ErrTransitionConflict  = errors.New("order status changed concurrently")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)
