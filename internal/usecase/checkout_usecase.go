package usecase

import (
	"context"

	"gemmarket/internal/domain/entity"
)

// BeginCheckoutOutput is the result of a successful checkout initiation: the
// gateway session, the URL to redirect the buyer to, and a pay-by-QR PNG of
// that URL.
type BeginCheckoutOutput struct {
	SessionID   string
	RedirectURL string
	Total       string // Decimal total as shown to the buyer, e.g. "15.005".
	QRCodePNG   []byte
}

// CheckoutUsecase orchestrates the checkout flow: it validates the cart
// against the catalog, exchanges line items for a gateway session, and
// processes the gateway's asynchronous success/cancel callbacks.
type CheckoutUsecase interface {
	// BeginCheckout snapshots the identity's cart into a CheckoutIntent and
	// returns the gateway redirect. It fails without any state change when
	// the cart is empty, when a cart item no longer resolves, or when the
	// gateway is unavailable.
	BeginCheckout(ctx context.Context, identity entity.Identity) (*BeginCheckoutOutput, error)

	// OnSuccess processes the gateway's success redirect. It is idempotent:
	// the first call for a pending, unexpired session clears the originating
	// cart and finalizes the intent; every later or unknown call is a benign
	// no-op.
	OnSuccess(ctx context.Context, sessionID string) error

	// OnCancel discards a pending intent so the buyer can retry; the cart is
	// left untouched. Unknown or already-resolved sessions are no-ops.
	OnCancel(ctx context.Context, sessionID string) error
}
