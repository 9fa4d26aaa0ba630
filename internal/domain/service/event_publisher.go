package service

import (
	"context"
)

// CheckoutCompletedEvent is published after a success callback finalizes a
// checkout intent. Merchant-facing consumers (order fulfilment, sales
// dashboards) subscribe to these asynchronously.
type CheckoutCompletedEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	SessionID  string   `json:"session_id"`           // The finalized gateway session.
	Identity   string   `json:"identity"`             // The buyer's cart identity.
	Total      string   `json:"total"`                // Decimal total as a string, e.g. "15.005".
	Currency   string   `json:"currency"`
	ProductIDs []string `json:"product_ids"` // The products that were paid for.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckoutCompleted publishes a checkout-completed event for async processing
	PublishCheckoutCompleted(ctx context.Context, event *CheckoutCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
