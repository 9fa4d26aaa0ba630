package service

import (
	"context"

	"gemmarket/internal/domain/entity"
)

// GatewaySession is the hosted-checkout session returned by the payment
// provider: an opaque session identifier plus the URL the buyer is redirected
// to. The provider later surfaces the same session id on the success and
// cancel callbacks.
type GatewaySession struct {
	SessionID   string
	RedirectURL string
}

// PaymentGateway abstracts the external hosted-checkout provider. The core
// never touches payment instruments; it builds a session request, redirects,
// and reacts to the callback.
type PaymentGateway interface {
	// CreateSession exchanges the line items for a hosted payment session.
	// A transport or provider error is reported as ErrGatewayUnavailable by
	// the caller; no partial state is created on failure.
	CreateSession(ctx context.Context, lineItems []entity.LineItem, successURL, cancelURL string) (*GatewaySession, error)
}
