package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/spicegarden/order-service/internal/models"
	"github.com/spicegarden/order-service/internal/repository"
)

// Currency submitted to the gateway with every order.
const Currency = "INR"

// Repos and the gateway are interfaces so tests can substitute fakes.
type MenuRepo interface {
	GetPrices(ctx context.Context, ids []string) (map[string]float64, error)
}

type OrderRepo interface {
	InsertPending(ctx context.Context, order *models.Order) (string, error)
	MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) error
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) bool
}

// CheckoutResult is what a successful checkout returns to the caller.
type CheckoutResult struct {
	GatewayOrderID string
	DBOrderID      string
}

type OrderService struct {
	menu    MenuRepo
	orders  OrderRepo
	gateway Gateway

	// strictPricing rejects carts referencing unknown menu items; the
	// default reproduces the original drop-silently billing policy.
	strictPricing bool

	queryTimeout   time.Duration
	gatewayTimeout time.Duration

	now func() time.Time
}

func NewOrderService(menu MenuRepo, orders OrderRepo, gw Gateway, strictPricing bool, queryTimeout, gatewayTimeout time.Duration) *OrderService {
	return &OrderService{
		menu:           menu,
		orders:         orders,
		gateway:        gw,
		strictPricing:  strictPricing,
		queryTimeout:   queryTimeout,
		gatewayTimeout: gatewayTimeout,
		now:            time.Now,
	}
}

// CreateOrder re-prices the cart against stored prices, creates a gateway
// order for the rounded minor-unit amount, and persists a pending order row.
// No retries happen here; each call produces its own order row and gateway
// order, so concurrent checkouts never contend.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, cart []models.CartLine) (*CheckoutResult, error) {
	if userID == "" {
		return nil, &ValidationError{Reason: "user_id is required"}
	}
	if len(cart) == 0 {
		return nil, &ValidationError{Reason: "cart is empty"}
	}
	for _, line := range cart {
		if line.ID == "" {
			return nil, &ValidationError{Reason: "cart line is missing an item id"}
		}
		if line.Quantity <= 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("quantity for item %q must be positive", line.ID)}
		}
	}

	ids := distinctIDs(cart)

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	prices, err := s.menu.GetPrices(qctx, ids)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	var total float64
	for _, line := range cart {
		price, ok := prices[line.ID]
		if !ok {
			if s.strictPricing {
				return nil, &ValidationError{Reason: fmt.Sprintf("unknown menu item %q", line.ID)}
			}
			// Stale or removed items bill as zero.
			continue
		}
		total += price * float64(line.Quantity)
	}

	// Round exactly once, at the gateway boundary, so rounding error never
	// compounds across lines.
	amountMinor := int64(math.Round(total * 100))

	receipt := receiptFor(userID, cart, s.now())

	gctx, gcancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer gcancel()
	gatewayOrderID, err := s.gateway.CreateOrder(gctx, amountMinor, Currency, receipt)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}

	order := &models.Order{
		UserID:          userID,
		Items:           cart,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		RazorpayOrderID: gatewayOrderID,
	}

	ictx, icancel := context.WithTimeout(ctx, s.queryTimeout)
	defer icancel()
	dbOrderID, err := s.orders.InsertPending(ictx, order)
	if err != nil {
		// The gateway order exists but has no local row; log the id so
		// operators can reconcile it.
		log.Printf("order insert failed, gateway order %s is orphaned: %v", gatewayOrderID, err)
		return nil, &PersistenceError{GatewayOrderID: gatewayOrderID, Err: err}
	}

	return &CheckoutResult{GatewayOrderID: gatewayOrderID, DBOrderID: dbOrderID}, nil
}

// ConfirmPayment verifies the checkout widget's payment signature and flips
// the matching pending order to paid.
func (s *OrderService) ConfirmPayment(ctx context.Context, gatewayOrderID, paymentID, signature string) error {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return &ValidationError{Reason: "razorpay_order_id, razorpay_payment_id and razorpay_signature are required"}
	}

	if !s.gateway.VerifyPaymentSignature(gatewayOrderID, paymentID, signature) {
		return &ValidationError{Reason: "payment signature verification failed"}
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	if err := s.orders.MarkPaid(qctx, gatewayOrderID, paymentID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return &PersistenceError{GatewayOrderID: gatewayOrderID, Err: err}
	}
	return nil
}

func distinctIDs(cart []models.CartLine) []string {
	seen := make(map[string]bool, len(cart))
	ids := make([]string, 0, len(cart))
	for _, line := range cart {
		if seen[line.ID] {
			continue
		}
		seen[line.ID] = true
		ids = append(ids, line.ID)
	}
	return ids
}
