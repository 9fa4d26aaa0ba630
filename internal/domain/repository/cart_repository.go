// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gemmarket/internal/domain/entity"
)

// CartRepository defines the operations for cart persistence. Carts are keyed
// by identity; a missing cart is not an error, it is an empty cart waiting to
// be created on first mutation.
type CartRepository interface {
	// FindByIdentity retrieves the identity's cart, or a new empty cart if
	// none has been persisted yet.
	FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.Cart, error)

	// Save persists the cart's current contents, creating the row on first use.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear empties the identity's cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context, identity entity.Identity) error
}
