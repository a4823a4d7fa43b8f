package models

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// IsTerminal reports whether no further status transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a persisted checkout attempt. TotalAmount is computed
// server-side from stored prices, never taken from the caller.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Items             []CartLine  `json:"items"`
	TotalAmount       float64     `json:"total_amount"`
	Status            OrderStatus `json:"status"`
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
