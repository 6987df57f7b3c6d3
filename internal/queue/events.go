// Package queue defines the work item payloads exchanged between the API and
// the order-processing worker.
package queue

import (
	"encoding/json"
	"fmt"
)

const (
	RKOrderPlaced = "order.placed"
	RKOrderStatus = "order.status"
)

// PlacedItem is the per-line snapshot carried by the work item: enough to
// decrement stock without re-reading the order.
type PlacedItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type OrderPlaced struct {
	OrderID string       `json:"order_id"`
	Items   []PlacedItem `json:"items"`
}

type OrderStatusChanged struct {
	OrderID string `json:"order_id"`
	Email   string `json:"email"`
	Status  string `json:"status"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
