package model

// OrderStatus describes an order's lifecycle state.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// statusFlow maps each status to its single happy-path successor. Terminal
// statuses map to the empty status.
var statusFlow = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusReady,
	OrderStatusReady:          OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
	OrderStatusDelivered:      "",
	OrderStatusCancelled:      "",
}

// statusSequence is the happy-path ordering used for progress rendering.
var statusSequence = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusConfirmed:      1,
	OrderStatusPreparing:      2,
	OrderStatusReady:          3,
	OrderStatusOutForDelivery: 4,
	OrderStatusDelivered:      5,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := statusFlow[s]
	return ok
}

// Next returns the single successor status, or false for terminal or unknown
// statuses. The machine never skips states.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := statusFlow[s]
	if !ok || next == "" {
		return "", false
	}
	return next, true
}

// IsTerminal reports whether no further transition is defined from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Cancellable reports whether an order in this status may still be cancelled.
// Once the kitchen starts preparing, cancellation is no longer offered.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// IsCompletedAt reports whether s should render as completed on a progress
// timeline for an order currently at current. Cancelled orders render nothing
// as completed.
func (s OrderStatus) IsCompletedAt(current OrderStatus) bool {
	if current == OrderStatusCancelled {
		return false
	}
	pos, ok := statusSequence[s]
	cur, okCur := statusSequence[current]
	return ok && okCur && pos <= cur
}

// IsActiveAt reports whether s is the order's current status.
func (s OrderStatus) IsActiveAt(current OrderStatus) bool {
	return s == current
}

// ActiveStatuses lists the non-terminal statuses, used for active-order counts.
func ActiveStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusOutForDelivery,
	}
}
