package usecase

import (
	"context"

	"gemmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the writable product fields for create and update.
// Price travels as a decimal string so no precision is lost in transit.
type ProductInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	ImageRef    string `json:"image_ref"`

	Material        string `json:"material" validate:"max=120"`
	Weight          string `json:"weight" validate:"max=120"`
	Carat           string `json:"carat" validate:"max=120"`
	Color           string `json:"color" validate:"max=120"`
	Clarity         string `json:"clarity" validate:"max=120"`
	CountryOfOrigin string `json:"country_of_origin" validate:"max=120"`
}

// CatalogUsecase defines the catalog-facing business operations: product
// listing and search for buyers, product management for merchants.
type CatalogUsecase interface {
	// CreateProduct lists a new product under the calling user's merchant
	// profile. The user must already have a merchant profile.
	CreateProduct(ctx context.Context, userID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product's price and descriptive fields. Only
	// the owning merchant may update; anyone else gets an ownership error.
	UpdateProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListMerchantProducts retrieves the products listed by one merchant.
	ListMerchantProducts(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// SearchProducts performs a case-insensitive substring match against
	// name, material, and description (union of matches).
	SearchProducts(ctx context.Context, query string) ([]*entity.Product, error)
}
