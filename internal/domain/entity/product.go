// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a gemstone or jewelry listing in the catalog. It belongs to
// exactly one merchant; MerchantID is required and immutable after creation.
// Price and the descriptive fields are mutable by the owning merchant only.
type Product struct {
	ID          uuid.UUID       // The unique ID for this product.
	MerchantID  uuid.UUID       // The user ID of the owning merchant.
	Name        string          // Display name of the product.
	Description string          // Free-text description.
	Price       decimal.Decimal // Non-negative decimal price in the shop currency.
	ImageRef    string          // Optional reference to a stored image; storage itself is external.

	// Domain-descriptive attributes, all optional free text.
	Material        string // e.g. "gold", "silver", "ruby".
	Weight          string // e.g. "2 grams", "10 carats".
	Carat           string // e.g. "24k" or "10ct".
	Color           string // e.g. "Red", "Blue", "White".
	Clarity         string // e.g. "VVS1", "IF", "Excellent".
	CountryOfOrigin string // e.g. "Colombia", "India", "Brazil".

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the given merchant user owns this product.
func (p *Product) OwnedBy(merchantID uuid.UUID) bool {
	return p.MerchantID == merchantID
}
