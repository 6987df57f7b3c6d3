package gateway

import (
	"context"
	"errors"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// Omise charges cards through the Omise API. Only the card method is
// supported; other methods should stay on the mock driver.
type Omise struct {
	client *omise.Client
}

func NewOmise(publicKey, secretKey string) (*Omise, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	return &Omise{client: client}, nil
}

func (o *Omise) Charge(ctx context.Context, req ChargeRequest) (Result, error) {
	if req.Method != "card" {
		return Result{}, errors.New("omise driver supports card payments only")
	}
	if req.CardToken == "" {
		return Result{Success: false}, nil
	}

	ch := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:   req.AmountCents,
		Currency: req.Currency,
		Card:     req.CardToken,
		Metadata: map[string]any{"order_id": req.OrderID},
	}
	if err := o.client.Do(ch, op); err != nil {
		return Result{}, err
	}
	return Result{Success: string(ch.Status) == "successful", Reference: ch.ID}, nil
}
