package service

import (
	"context"
	"log"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/gateway"
)

type paymentStore interface {
	Create(ctx context.Context, p *domain.Payment) error
	ByID(ctx context.Context, id string) (*domain.Payment, error)
	ByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
	CompletedByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	Save(ctx context.Context, p *domain.Payment) error
}

type orderAccess interface {
	ByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type PaymentSvc struct {
	payments paymentStore
	orders   orderAccess
	gw       gateway.Gateway
}

func NewPaymentSvc(payments paymentStore, orders orderAccess, gw gateway.Gateway) *PaymentSvc {
	return &PaymentSvc{payments: payments, orders: orders, gw: gw}
}

type ProcessPaymentInput struct {
	OrderID string               `json:"orderId" binding:"required"`
	Method  domain.PaymentMethod `json:"paymentMethod" binding:"required"`

	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
	CardToken  string `json:"cardToken"`

	PhoneNumber string `json:"phoneNumber"`
}

// Process records a payment attempt and runs it through the configured
// gateway. On success the parent order moves to processing.
func (s *PaymentSvc) Process(ctx context.Context, actor *domain.User, in ProcessPaymentInput) (*domain.Payment, error) {
	switch in.Method {
	case domain.MethodCard, domain.MethodMobileMoney, domain.MethodBankTransfer:
	default:
		return nil, apperr.Newf(apperr.BadRequest, "unsupported payment method %q", in.Method)
	}

	order, err := s.orders.ByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.ID {
		return nil, apperr.New(apperr.BadRequest, "you can only pay for your own orders")
	}
	if order.Status != domain.OrderPending {
		return nil, apperr.New(apperr.BadRequest, "order is no longer pending")
	}
	existing, err := s.payments.CompletedByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.BadRequest, "order has already been paid for")
	}

	payment := &domain.Payment{
		OrderID: order.ID,
		Amount:  order.TotalAmount,
		Method:  in.Method,
		Status:  domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	result, err := s.gw.Charge(ctx, gateway.ChargeRequest{
		OrderID:     order.ID,
		AmountCents: order.TotalAmount.Mul(centsPerUnit).IntPart(),
		Currency:    "USD",
		Method:      string(in.Method),
		CardNumber:  in.CardNumber,
		CardExpiry:  in.CardExpiry,
		CardCVV:     in.CardCVV,
		CardToken:   in.CardToken,
		PhoneNumber: in.PhoneNumber,
	})
	if err != nil {
		log.Printf("[payments] gateway charge for order %s failed: %v", order.ID, err)
		payment.Status = domain.PaymentFailed
		if saveErr := s.payments.Save(ctx, payment); saveErr != nil {
			return nil, saveErr
		}
		return payment, nil
	}

	payment.Reference = result.Reference
	if result.Success {
		payment.Status = domain.PaymentCompleted
	} else {
		payment.Status = domain.PaymentFailed
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	if result.Success {
		if err := s.orders.UpdateStatus(ctx, order.ID, domain.OrderProcessing); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

func (s *PaymentSvc) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payments.ByID(ctx, id)
}

func (s *PaymentSvc) ByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	return s.payments.ByOrder(ctx, orderID)
}

func (s *PaymentSvc) Refund(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.payments.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentCompleted {
		return nil, apperr.New(apperr.BadRequest, "can only refund completed payments")
	}
	payment.Status = domain.PaymentRefunded
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
