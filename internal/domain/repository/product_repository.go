// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gemmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the catalog operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products for a set of ids. Ids that do not
	// resolve are simply absent from the result; detecting the gap is the
	// caller's concern.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindAll retrieves every product, ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByMerchant retrieves a merchant's products, ordered by creation time.
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// Search performs a case-insensitive substring match against name,
	// material, and description, returning the union of matches ordered by
	// creation time.
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product. MerchantID is never changed by an
	// update; ownership is enforced by the usecase layer before calling this.
	Update(ctx context.Context, product *entity.Product) error
}
