package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/spicegarden/order-service/internal/models"
	"github.com/spicegarden/order-service/internal/service"
)

// --- Request / Response DTOs ---

type CreateOrderRequest struct {
	Cart   []models.CartLine `json:"cart"`
	UserID string            `json:"user_id"`
}

type CreateOrderResponse struct {
	OrderID   string `json:"orderId"`
	DBOrderID string `json:"dbOrderId"`
}

type ConfirmPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CheckoutService is the service surface the handlers need; tests substitute
// a fake.
type CheckoutService interface {
	CreateOrder(ctx context.Context, userID string, cart []models.CartLine) (*service.CheckoutResult, error)
	ConfirmPayment(ctx context.Context, gatewayOrderID, paymentID, signature string) error
}

// --- Handler struct & constructor ---

type OrderHandler struct {
	svc CheckoutService
}

func NewOrderHandler(svc CheckoutService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeCheckoutError maps the service error taxonomy to HTTP statuses.
// Validation messages are safe to return verbatim; everything else gets a
// generic message while the detail stays in the server log.
func writeCheckoutError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error()})
		return
	}

	var pErr *service.PersistenceError
	if errors.As(err, &pErr) {
		// The gateway order exists without a local row; keep the distinct
		// log line so these can be reconciled.
		log.Printf("checkout persistence failure: %v", pErr)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "checkout failed, please try again"})
		return
	}

	var gErr *service.GatewayError
	if errors.As(err, &gErr) {
		log.Printf("checkout gateway failure: %v", gErr)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "checkout failed, please try again"})
		return
	}

	log.Printf("checkout failure: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "checkout failed, please try again"})
}

// --- Handlers ---

// CreateOrder handles POST /orders: re-prices the submitted cart, creates a
// gateway order, and persists the pending order row.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	result, err := h.svc.CreateOrder(r.Context(), req.UserID, req.Cart)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResponse{
		OrderID:   result.GatewayOrderID,
		DBOrderID: result.DBOrderID,
	})
}

// ConfirmPayment handles POST /payments/confirm: verifies the checkout
// widget's signature and marks the order paid.
func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	err := h.svc.ConfirmPayment(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(models.OrderStatusPaid)})
}
