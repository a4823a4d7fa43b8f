package service

import (
	"context"
	"fmt"

	"github.com/spicegarden/order-service/internal/models"
)

// MockMenuRepo implements MenuRepo for testing
type MockMenuRepo struct {
	Prices map[string]float64
	Err    error
	Calls  int
}

func (m *MockMenuRepo) GetPrices(_ context.Context, ids []string) (map[string]float64, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]float64)
	for _, id := range ids {
		if p, ok := m.Prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// MockOrderRepo implements OrderRepo for testing
type MockOrderRepo struct {
	InsertErr   error
	MarkPaidErr error

	Inserted      []*models.Order // captures orders passed to InsertPending
	InsertCalls   int
	MarkPaidCalls int
	PaidOrderID   string
	PaidPaymentID string

	nextID int
}

func (m *MockOrderRepo) InsertPending(_ context.Context, order *models.Order) (string, error) {
	m.InsertCalls++
	if m.InsertErr != nil {
		return "", m.InsertErr
	}
	m.nextID++
	m.Inserted = append(m.Inserted, order)
	return fmt.Sprintf("db-order-%d", m.nextID), nil
}

func (m *MockOrderRepo) MarkPaid(_ context.Context, gatewayOrderID, paymentID string) error {
	m.MarkPaidCalls++
	if m.MarkPaidErr != nil {
		return m.MarkPaidErr
	}
	m.PaidOrderID = gatewayOrderID
	m.PaidPaymentID = paymentID
	return nil
}

// MockGateway implements Gateway for testing
type MockGateway struct {
	Err            error
	ValidSignature bool

	Calls      int
	Amounts    []int64
	Currencies []string
	Receipts   []string

	nextID int
}

func (m *MockGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	m.Amounts = append(m.Amounts, amountMinor)
	m.Currencies = append(m.Currencies, currency)
	m.Receipts = append(m.Receipts, receipt)
	m.nextID++
	return fmt.Sprintf("order_rzp%d", m.nextID), nil
}

func (m *MockGateway) VerifyPaymentSignature(_, _, _ string) bool {
	return m.ValidSignature
}
