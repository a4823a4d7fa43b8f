package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spicegarden/order-service/internal/models"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// InsertPending writes a new pending order row and returns the generated id.
// The cart snapshot is stored as submitted, as a JSONB column.
func (r *OrderRepo) InsertPending(ctx context.Context, order *models.Order) (string, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return "", fmt.Errorf("marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (user_id, items, total_amount, status, razorpay_order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`

	var id string
	err = r.db.QueryRowContext(ctx, query,
		order.UserID,
		itemsJSON,
		order.TotalAmount,
		string(order.Status),
		order.RazorpayOrderID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// MarkPaid transitions the order identified by its gateway order id to paid
// and attaches the gateway payment id. An order that is already paid stays
// paid; the call is then a no-op.
func (r *OrderRepo) MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) error {
	query := `
		UPDATE orders
		SET status = $2,
		    razorpay_payment_id = $3,
		    updated_at = NOW()
		WHERE razorpay_order_id = $1 AND status <> $2
	`

	res, err := r.db.ExecContext(ctx, query, gatewayOrderID, string(models.OrderStatusPaid), paymentID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows means either the order does not exist or it was already paid.
	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE razorpay_order_id = $1`, gatewayOrderID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("check order status: %w", err)
	}
	return nil
}

// MarkFailed records a definitively failed payment attempt. Nothing in the
// checkout path calls this; it exists for reconciliation tooling.
func (r *OrderRepo) MarkFailed(ctx context.Context, gatewayOrderID string) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE razorpay_order_id = $1 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, gatewayOrderID,
		string(models.OrderStatusFailed), string(models.OrderStatusPending))
	if err != nil {
		return fmt.Errorf("mark order failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark order failed: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
