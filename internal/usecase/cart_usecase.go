package usecase

import (
	"context"

	"gemmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemView is one cart line as shown to the buyer: the current catalog
// product, never a price cached at add time.
type CartItemView struct {
	Product *entity.Product
}

// CartView is the rendered cart: items in insertion order plus the total
// computed from fresh catalog prices. Total is zero for an empty cart.
type CartView struct {
	Items []CartItemView
	Total decimal.Decimal
}

// CartUsecase defines the cart-manager operations, partitioned by identity.
type CartUsecase interface {
	// AddItem inserts a product reference. It fails with a product-not-found
	// error when the id does not resolve at call time; adding an
	// already-present id is a no-op.
	AddItem(ctx context.Context, identity entity.Identity, productID uuid.UUID) error

	// RemoveItem drops a product reference. Removing an absent id is a no-op,
	// not an error.
	RemoveItem(ctx context.Context, identity entity.Identity, productID uuid.UUID) error

	// GetCart renders the identity's cart with freshly fetched prices.
	GetCart(ctx context.Context, identity entity.Identity) (*CartView, error)
}
