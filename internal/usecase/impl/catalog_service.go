package impl

import (
	"context"
	"log/slog"

	deliverycontext "gemmarket/internal/delivery/context"
	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product under the calling user's merchant profile.
func (srv *catalogService) CreateProduct(ctx context.Context, userID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "product creation for unknown user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for product creation")
		}

		if !user.IsMerchant() {
			return errors.Wrap(domainerrors.ErrMerchantProfileRequired, "product creation without merchant profile")
		}

		product = &entity.Product{
			MerchantID:      user.ID,
			Name:            input.Name,
			Description:     input.Description,
			Price:           price,
			ImageRef:        input.ImageRef,
			Material:        input.Material,
			Weight:          input.Weight,
			Carat:           input.Carat,
			Color:           input.Color,
			Clarity:         input.Clarity,
			CountryOfOrigin: input.CountryOfOrigin,
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("merchantID", product.MerchantID))

	return product, nil
}

// UpdateProduct modifies a product's price and descriptive fields after an
// ownership check. MerchantID never changes.
func (srv *catalogService) UpdateProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := productRepo.FindByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product update lookup missed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load product for update")
		}

		if !existing.OwnedBy(userID) {
			srv.log(ctx).Warn("Ownership violation on product update",
				slog.Any("productID", productID), slog.Any("userID", userID), slog.Any("ownerID", existing.MerchantID))

			return errors.Wrap(domainerrors.ErrProductOwnershipViolation, "product owned by another merchant")
		}

		existing.Name = input.Name
		existing.Description = input.Description
		existing.Price = price
		existing.ImageRef = input.ImageRef
		existing.Material = input.Material
		existing.Weight = input.Weight
		existing.Carat = input.Carat
		existing.Color = input.Color
		existing.Clarity = input.Clarity
		existing.CountryOfOrigin = input.CountryOfOrigin

		if err := productRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		product = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup missed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load product")
		}

		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves the whole catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// ListMerchantProducts retrieves the products listed by one merchant.
func (srv *catalogService) ListMerchantProducts(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByMerchant(ctx, merchantID)
		if err != nil {
			return errors.Wrap(err, "failed to list merchant products")
		}

		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// SearchProducts matches the query against name, material, and description.
// An empty query returns no results rather than the whole catalog.
func (srv *catalogService) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	if query == "" {
		return []*entity.Product{}, nil
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().Search(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}

		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// parsePrice validates the decimal price string from a product input.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrap(domainerrors.ErrInvalidPrice, "price is not a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, errors.Wrap(domainerrors.ErrInvalidPrice, "price is negative")
	}

	return price, nil
}
