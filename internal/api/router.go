package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spicegarden/order-service/internal/api/handlers"
	"github.com/spicegarden/order-service/internal/api/middleware"
)

// NewRouter builds the HTTP router for the order-service. The CORS layer
// answers preflight requests before any body processing; the headers match
// what the restaurant web app sends.
func NewRouter(orderHandler *handlers.OrderHandler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	r.Post("/orders", orderHandler.CreateOrder)
	r.Post("/payments/confirm", orderHandler.ConfirmPayment)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
