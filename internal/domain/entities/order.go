package entities

import "time"

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - Every order starts as pending.
//   - Completed and canceled are terminal: no outgoing transitions.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// CanTransitionTo reports whether the status may move to target.
// Setting the current status again is always allowed (idempotent no-op).
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !target.Valid() {
		return false
	}
	if s == target {
		return true
	}
	return !s.Terminal()
}

// OrderLine binds a catalog-item snapshot to a quantity.
//
// ProductName and Price are copies taken when the order was composed; later
// catalog edits never affect existing orders.

type OrderLine struct {
	ID            string  `json:"id"`
	CatalogItemID string  `json:"catalog_item_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
}

// Subtotal is the line's contribution to the order total.
func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order is a service order composed from catalog items for a client.
//
// Domain notes:
//   - ClientName is a denormalized snapshot, not a live join.
//   - TotalAmount always equals the sum of line subtotals; it is recomputed
//     whenever the items change.
//   - IDs are sequential integers issued by the store, starting at 1001.

type Order struct {
	ID            int         `json:"id"`
	ClientID      string      `json:"client_id"`
	ClientName    string      `json:"client_name"`
	Status        OrderStatus `json:"status"`
	Items         []OrderLine `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// LinesTotal folds the line subtotals. No discount, tax or rounding applies.
func LinesTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
