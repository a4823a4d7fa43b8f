package gateway

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// Client wraps the Razorpay SDK. Construct it once at startup and inject it
// into the service; the underlying HTTP client is stateless and safe for
// concurrent use.
type Client struct {
	rz        *razorpay.Client
	keySecret string
}

func NewClient(keyID, keySecret string) *Client {
	rz := razorpay.NewClient(keyID, keySecret)
	return &Client{rz: rz, keySecret: keySecret}
}

// CreateOrder creates a gateway order for an integer minor-unit amount and
// returns the gateway order id. The SDK does not take a context; the caller's
// deadline bounds the overall request instead.
func (c *Client) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := c.rz.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", errors.New("razorpay response missing order id")
	}
	return id, nil
}

// VerifyPaymentSignature checks the HMAC signature Razorpay's checkout widget
// returns on payment success.
func (c *Client) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, c.keySecret)
}
