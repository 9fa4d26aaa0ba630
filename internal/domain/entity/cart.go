// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Identity is the opaque key partitioning cart state: an authenticated user
// id or an anonymous session id. The core trusts it as handed in by the
// delivery layer and never inspects its contents.
type Identity string

// Cart is an ordered collection of product references owned by one identity.
// A given product id appears at most once; the cart holds references only and
// never caches prices.
type Cart struct {
	ID         uuid.UUID   // The unique ID for this cart row.
	Identity   Identity    // The owning identity; one cart per identity.
	ProductIDs []uuid.UUID // Product references in insertion order, each at most once.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether the product is already in the cart.
func (c *Cart) Contains(productID uuid.UUID) bool {
	return slices.Contains(c.ProductIDs, productID)
}

// Add inserts a product reference. Adding an already-present id is a no-op;
// the return value reports whether the cart changed.
func (c *Cart) Add(productID uuid.UUID) bool {
	if c.Contains(productID) {
		return false
	}
	c.ProductIDs = append(c.ProductIDs, productID)

	return true
}

// Remove drops a product reference. Removing an absent id is a no-op; the
// return value reports whether the cart changed.
func (c *Cart) Remove(productID uuid.UUID) bool {
	idx := slices.Index(c.ProductIDs, productID)
	if idx < 0 {
		return false
	}
	c.ProductIDs = slices.Delete(c.ProductIDs, idx, idx+1)

	return true
}

// IsEmpty reports whether the cart holds no product references.
func (c *Cart) IsEmpty() bool {
	return len(c.ProductIDs) == 0
}
