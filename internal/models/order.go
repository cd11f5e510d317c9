package models

import "time"

type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "new"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusRejected       OrderStatus = "rejected"
)

// Order is an entry on the order board. The display code keeps the "#1234"
// form customers see on their receipt. Values are integer centavos; the
// clock/"time ago" strings shown on the board are derived from PlacedAt.
type Order struct {
	ID           string      `json:"id"`
	Customer     string      `json:"customer"`
	ItemsSummary string      `json:"items_summary"`
	ValueCents   int64       `json:"value_cents"`
	PlacedAt     time.Time   `json:"placed_at"`
	Status       OrderStatus `json:"status"`
}
