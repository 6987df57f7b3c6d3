package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Mock simulates a payment provider: a fixed artificial delay, then success
// with probability SuccessRate unless required method-specific fields are
// missing, which forces a failure. Rand and Delay are injectable so tests can
// run deterministically.
type Mock struct {
	Delay       time.Duration
	SuccessRate float64
	Rand        func() float64
	Now         func() time.Time
}

func NewMock() *Mock {
	return &Mock{
		Delay:       time.Second,
		SuccessRate: 0.9,
		Rand:        rand.Float64,
		Now:         time.Now,
	}
}

func (m *Mock) Charge(ctx context.Context, req ChargeRequest) (Result, error) {
	ref := fmt.Sprintf("PAY_%d_%09d", m.Now().UnixMilli(), rand.Int31n(1_000_000_000))

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	switch req.Method {
	case "card":
		if req.CardNumber == "" || req.CardExpiry == "" || req.CardCVV == "" {
			return Result{Success: false, Reference: ref}, nil
		}
	case "mobile_money":
		if req.PhoneNumber == "" {
			return Result{Success: false, Reference: ref}, nil
		}
	}

	return Result{Success: m.Rand() < m.SuccessRate, Reference: ref}, nil
}
