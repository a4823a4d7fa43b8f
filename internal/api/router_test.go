package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spicegarden/order-service/internal/api/handlers"
	"github.com/spicegarden/order-service/internal/models"
	"github.com/spicegarden/order-service/internal/service"
)

type serviceStub struct {
	createCalls int
}

func (s *serviceStub) CreateOrder(_ context.Context, _ string, _ []models.CartLine) (*service.CheckoutResult, error) {
	s.createCalls++
	return &service.CheckoutResult{GatewayOrderID: "order_rzp1", DBOrderID: "db-1"}, nil
}

func (s *serviceStub) ConfirmPayment(_ context.Context, _, _, _ string) error {
	return nil
}

func TestRouter_PreflightShortCircuits(t *testing.T) {
	stub := &serviceStub{}
	router := NewRouter(handlers.NewOrderHandler(stub), 30*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("OPTIONS", "/orders", nil)
	request.Header.Set("Origin", "https://spicegarden.example")
	request.Header.Set("Access-Control-Request-Method", "POST")
	request.Header.Set("Access-Control-Request-Headers", "content-type, authorization")

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	// preflight never reaches the handler
	assert.Equal(t, 0, stub.createCalls)
}

func TestRouter_CORSHeadersOnActualRequest(t *testing.T) {
	stub := &serviceStub{}
	router := NewRouter(handlers.NewOrderHandler(stub), 30*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/health", nil)
	request.Header.Set("Origin", "https://spicegarden.example")

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Health(t *testing.T) {
	stub := &serviceStub{}
	router := NewRouter(handlers.NewOrderHandler(stub), 30*time.Second)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_RequestIDHeader(t *testing.T) {
	stub := &serviceStub{}
	router := NewRouter(handlers.NewOrderHandler(stub), 30*time.Second)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/health", nil)
	request.Header.Set("X-Request-ID", "req-abc")
	router.ServeHTTP(recorder, request)
	assert.Equal(t, "req-abc", recorder.Header().Get("X-Request-ID"))
}
