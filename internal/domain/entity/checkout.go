// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IntentStatus describes the lifecycle state of a CheckoutIntent.
type IntentStatus string

const (
	// IntentStatusPending means the gateway session was created and the user
	// has not yet completed or abandoned the hosted payment flow.
	IntentStatusPending IntentStatus = "pending"
	// IntentStatusFinalized means the success callback confirmed the payment
	// and the originating cart has been cleared.
	IntentStatusFinalized IntentStatus = "finalized"
	// IntentStatusCancelled means the cancel callback discarded the intent;
	// the cart is left untouched so the user can retry.
	IntentStatusCancelled IntentStatus = "cancelled"
	// IntentStatusSuperseded means a newer checkout attempt replaced this one
	// before it resolved.
	IntentStatusSuperseded IntentStatus = "superseded"
	// IntentStatusExpired means a callback arrived after the intent TTL; no
	// side effects were applied.
	IntentStatusExpired IntentStatus = "expired"
)

// LineItem is one priced entry sent to the payment gateway. UnitAmount is in
// minor currency units (e.g. cents), computed by truncating sub-cent amounts.
type LineItem struct {
	ProductID  uuid.UUID // The catalog product this line was built from.
	Name       string    // Display name shown on the hosted payment page.
	UnitAmount int64     // Price in minor currency units, floor(price * 100).
	Currency   string    // ISO currency code, e.g. "usd".
	Quantity   int64     // Always 1 in the current cart model.
}

// CheckoutIntent is the ephemeral snapshot taken at checkout time: cart
// contents, computed line items, the decimal total shown to the user, and the
// gateway session it was exchanged for. It is keyed by the gateway session id
// and valid until the gateway redirects back or the TTL passes. A repeated
// checkout supersedes (not merges) the pending intent of the same identity.
type CheckoutIntent struct {
	SessionID   string          // The gateway session identifier, primary key of the intent.
	Identity    Identity        // The identity whose cart was snapshotted.
	LineItems   []LineItem      // One line per distinct product in the cart.
	Total       decimal.Decimal // Decimal sum of resolved prices, not the rounded minor units.
	RedirectURL string          // The gateway-hosted payment page.
	Status      IntentStatus
	ExpiresAt   time.Time // Past this instant callbacks refuse to apply side effects.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired reports whether the intent TTL has passed at the given instant.
func (i *CheckoutIntent) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Resolved reports whether the intent has reached a terminal status and
// callbacks for its session must be treated as benign no-ops.
func (i *CheckoutIntent) Resolved() bool {
	return i.Status != IntentStatusPending
}
