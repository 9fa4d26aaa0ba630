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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem inserts a product reference into the identity's cart. The product
// must resolve at call time; adding an already-present id changes nothing.
func (srv *cartService) AddItem(ctx context.Context, identity entity.Identity, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "cart add for unknown product")
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve product for cart add")
		}

		cartRepo := repoFactory.CartRepo()
		cart, err := cartRepo.FindByIdentity(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		if !cart.Add(productID) {
			return nil
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		srv.log(ctx).Debug("Cart item added", slog.Any("productID", productID), slog.Int("cartSize", len(cart.ProductIDs)))

		return nil
	})
}

// RemoveItem drops a product reference from the identity's cart. Removing an
// absent id succeeds without touching storage.
func (srv *cartService) RemoveItem(ctx context.Context, identity entity.Identity, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		cart, err := cartRepo.FindByIdentity(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		if !cart.Remove(productID) {
			return nil
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		return nil
	})
}

// GetCart renders the identity's cart against the current catalog. Prices are
// always fetched fresh; references that no longer resolve are skipped in the
// view but kept in the cart, so checkout can still report them.
func (srv *cartService) GetCart(ctx context.Context, identity entity.Identity) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindByIdentity(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		view = &usecase.CartView{
			Items: []usecase.CartItemView{},
			Total: decimal.Zero,
		}
		if cart.IsEmpty() {
			return nil
		}

		products, err := repoFactory.ProductRepo().FindByIDs(ctx, cart.ProductIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cart products")
		}

		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		for _, productID := range cart.ProductIDs {
			product, ok := byID[productID]
			if !ok {
				continue
			}
			view.Items = append(view.Items, usecase.CartItemView{Product: product})
			view.Total = view.Total.Add(product.Price)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
