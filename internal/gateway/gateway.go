// Package gateway abstracts the payment provider behind a strategy interface
// so callers and tests never depend on provider behavior or randomness.
package gateway

import "context"

// ChargeRequest is the provider-agnostic payment attempt. Method-specific
// fields are optional and validated per method by the driver.
type ChargeRequest struct {
	OrderID     string
	AmountCents int64
	Currency    string
	Method      string

	CardNumber string
	CardExpiry string
	CardCVV    string
	CardToken  string

	PhoneNumber string
}

// Result reports the outcome with an opaque provider reference.
type Result struct {
	Success   bool
	Reference string
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Result, error)
}
