package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/queue"
)

type productStockFake struct {
	stock map[string]int
	err   error
}

func (f *productStockFake) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	have, ok := f.stock[id]
	if !ok || have < qty {
		return false, nil
	}
	f.stock[id] = have - qty
	return true, nil
}

type orderLoaderFake struct {
	order *domain.Order
}

func (f *orderLoaderFake) ByID(ctx context.Context, id string) (*domain.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, errors.New("order not found")
	}
	return f.order, nil
}

type mailRecorder struct {
	confirmations []string
	statuses      []string
}

func (m *mailRecorder) SendVerificationEmail(to, token string) {}
func (m *mailRecorder) SendSellerApplicationEmail(adminTo, applicantEmail, storeName, storeDescription string, upgrade bool) {
}
func (m *mailRecorder) SendSellerApprovalEmail(to, tempPassword string) {}
func (m *mailRecorder) SendSellerUpgradeEmail(to string)               {}

func (m *mailRecorder) SendOrderConfirmationEmail(to, orderID string, total decimal.Decimal) {
	m.confirmations = append(m.confirmations, to+":"+orderID+":"+total.StringFixed(2))
}

func (m *mailRecorder) SendOrderStatusEmail(to, orderID, status string) {
	m.statuses = append(m.statuses, to+":"+orderID+":"+status)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestHandleOrderPlacedDecrementsStockAndConfirms(t *testing.T) {
	products := &productStockFake{stock: map[string]int{"laptop": 10}}
	orders := &orderLoaderFake{order: &domain.Order{
		ID:          "order-1",
		TotalAmount: decimal.RequireFromString("2999.97"),
		User:        &domain.User{Email: "shopper@b.com"},
	}}
	mail := &mailRecorder{}
	p := NewProcessor(products, orders, mail)

	body := mustJSON(t, queue.OrderPlaced{
		OrderID: "order-1",
		Items:   []queue.PlacedItem{{ProductID: "laptop", Quantity: 3, Price: "999.99"}},
	})
	require.NoError(t, p.Handle(context.Background(), queue.RKOrderPlaced, body))

	assert.Equal(t, 7, products.stock["laptop"])
	assert.Equal(t, []string{"shopper@b.com:order-1:2999.97"}, mail.confirmations)
}

func TestHandleOrderPlacedSkipsExhaustedStock(t *testing.T) {
	products := &productStockFake{stock: map[string]int{"laptop": 1}}
	orders := &orderLoaderFake{order: &domain.Order{
		ID:   "order-1",
		User: &domain.User{Email: "shopper@b.com"},
	}}
	mail := &mailRecorder{}
	p := NewProcessor(products, orders, mail)

	body := mustJSON(t, queue.OrderPlaced{
		OrderID: "order-1",
		Items:   []queue.PlacedItem{{ProductID: "laptop", Quantity: 3, Price: "999.99"}},
	})
	// A losing race on stock is not an error: the message must not requeue.
	require.NoError(t, p.Handle(context.Background(), queue.RKOrderPlaced, body))

	assert.Equal(t, 1, products.stock["laptop"])
	assert.Len(t, mail.confirmations, 1)
}

func TestHandleOrderPlacedErrorRequeues(t *testing.T) {
	products := &productStockFake{err: errors.New("db down")}
	p := NewProcessor(products, &orderLoaderFake{}, &mailRecorder{})

	body := mustJSON(t, queue.OrderPlaced{
		OrderID: "order-1",
		Items:   []queue.PlacedItem{{ProductID: "laptop", Quantity: 1}},
	})
	assert.Error(t, p.Handle(context.Background(), queue.RKOrderPlaced, body))
}

func TestHandleOrderStatusSendsEmail(t *testing.T) {
	mail := &mailRecorder{}
	p := NewProcessor(&productStockFake{}, &orderLoaderFake{}, mail)

	body := mustJSON(t, queue.OrderStatusChanged{
		OrderID: "order-1",
		Email:   "shopper@b.com",
		Status:  "shipped",
	})
	require.NoError(t, p.Handle(context.Background(), queue.RKOrderStatus, body))
	assert.Equal(t, []string{"shopper@b.com:order-1:shipped"}, mail.statuses)
}

func TestHandleIgnoresUnknownRoutingKey(t *testing.T) {
	p := NewProcessor(&productStockFake{}, &orderLoaderFake{}, &mailRecorder{})
	assert.NoError(t, p.Handle(context.Background(), "order.unknown", []byte("{}")))
}

func TestHandleMalformedPayload(t *testing.T) {
	p := NewProcessor(&productStockFake{}, &orderLoaderFake{}, &mailRecorder{})
	err := p.Handle(context.Background(), queue.RKOrderPlaced, []byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadPayload)
}

type ackRecorder struct {
	acks  int
	nacks []bool // requeue flag per Nack
}

func (a *ackRecorder) Ack(tag uint64, multiple bool) error { a.acks++; return nil }

func (a *ackRecorder) Nack(tag uint64, multiple, requeue bool) error {
	a.nacks = append(a.nacks, requeue)
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error { return nil }

// A poison message must be dropped, not redelivered forever; a transient
// failure must requeue; a good message must Ack.
func TestRunAckDecisions(t *testing.T) {
	products := &productStockFake{stock: map[string]int{"laptop": 10}}
	orders := &orderLoaderFake{order: &domain.Order{
		ID:   "order-1",
		User: &domain.User{Email: "shopper@b.com"},
	}}
	p := NewProcessor(products, orders, &mailRecorder{})

	ack := &ackRecorder{}
	good := mustJSON(t, queue.OrderPlaced{
		OrderID: "order-1",
		Items:   []queue.PlacedItem{{ProductID: "laptop", Quantity: 1}},
	})
	transient := mustJSON(t, queue.OrderPlaced{
		OrderID: "order-2", // unknown order makes the load fail
		Items:   []queue.PlacedItem{{ProductID: "laptop", Quantity: 1}},
	})

	msgs := make(chan amqp.Delivery, 3)
	msgs <- amqp.Delivery{Acknowledger: ack, RoutingKey: queue.RKOrderPlaced, Body: []byte("not json")}
	msgs <- amqp.Delivery{Acknowledger: ack, RoutingKey: queue.RKOrderPlaced, Body: transient}
	msgs <- amqp.Delivery{Acknowledger: ack, RoutingKey: queue.RKOrderPlaced, Body: good}
	close(msgs)

	require.NoError(t, p.Run(context.Background(), msgs))
	assert.Equal(t, []bool{false, true}, ack.nacks)
	assert.Equal(t, 1, ack.acks)
}
