package service

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned by payment confirmation when no order row
// matches the gateway order id.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError marks malformed or missing caller input. Its message is
// safe to surface verbatim to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid checkout request: " + e.Reason
}

// UpstreamError marks a failed read from the data store. No side effect has
// happened yet, so retrying from scratch is safe.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("price lookup failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// GatewayError marks a failed payment-gateway call. No order row was written,
// so retrying from scratch is safe.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway call failed: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// PersistenceError marks an insert failure after the gateway order was
// already created. GatewayOrderID identifies the orphaned gateway order so
// operators can reconcile it.
type PersistenceError struct {
	GatewayOrderID string
	Err            error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order insert failed (gateway order %s already created): %v", e.GatewayOrderID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
