package models

import "time"

// OrderStatus is the fulfillment state of a finalized order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a frozen line-item snapshot. Name and price are copied at
// finalization so later catalog edits never alter historical orders.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is one finalized checkout. Invariant: Total == Subtotal + Shipping at
// creation time; it is never recomputed afterwards.
type Order struct {
	ID             string      `json:"id"`
	TrackingNumber string      `json:"tracking_number"`
	Status         OrderStatus `json:"status"`
	CustomerName   string      `json:"customer_name"`
	Address        string      `json:"address"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Shipping       float64     `json:"shipping"`
	Total          float64     `json:"total"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}
