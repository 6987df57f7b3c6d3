// Package worker consumes order work items: stock decrement plus the
// confirmation and status emails.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/mailer"
	"github.com/intwaza/online-marketplace/internal/queue"
)

// errBadPayload marks messages that can never be processed. Requeueing them
// would redeliver the same broken body in a hot loop.
var errBadPayload = errors.New("malformed payload")

type productStock interface {
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
}

type orderLoader interface {
	ByID(ctx context.Context, id string) (*domain.Order, error)
}

type Processor struct {
	products productStock
	orders   orderLoader
	mail     mailer.Mailer
}

func NewProcessor(products productStock, orders orderLoader, mail mailer.Mailer) *Processor {
	return &Processor{products: products, orders: orders, mail: mail}
}

// Run drains deliveries until the context ends or the channel closes.
// Transient handler errors Nack with requeue; malformed payloads are dropped
// instead, since redelivery cannot fix them. The processor keeps no
// idempotency state of its own.
func (p *Processor) Run(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := p.Handle(ctx, d.RoutingKey, d.Body); err != nil {
				requeue := !errors.Is(err, errBadPayload)
				log.Printf("[worker] handle key=%s err=%v requeue=%t", d.RoutingKey, err, requeue)
				_ = d.Nack(false, requeue)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (p *Processor) Handle(ctx context.Context, key string, body []byte) error {
	switch key {
	case queue.RKOrderPlaced:
		ev, err := queue.MustUnmarshal[queue.OrderPlaced](body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return p.processOrder(ctx, ev)

	case queue.RKOrderStatus:
		ev, err := queue.MustUnmarshal[queue.OrderStatusChanged](body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		p.mail.SendOrderStatusEmail(ev.Email, ev.OrderID, ev.Status)
		return nil

	default:
		log.Printf("[worker] skip unknown key=%s", key)
	}
	return nil
}

func (p *Processor) processOrder(ctx context.Context, ev queue.OrderPlaced) error {
	for _, it := range ev.Items {
		// Check and decrement happen in one conditional update, so a racing
		// order cannot drive stock negative.
		ok, err := p.products.DecrementStock(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			log.Printf("[worker] order %s: stock for product %s no longer sufficient, skipping decrement",
				ev.OrderID, it.ProductID)
		}
	}

	order, err := p.orders.ByID(ctx, ev.OrderID)
	if err != nil {
		return err
	}
	if order.User != nil {
		p.mail.SendOrderConfirmationEmail(order.User.Email, order.ID, order.TotalAmount)
	}
	log.Printf("[worker] order %s processed", ev.OrderID)
	return nil
}
