package postgres

import (
	"context"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the domain.CartRepository interface using GORM.
// Cart contents are stored as ordered item rows; the Position column preserves
// insertion order across loads.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByIdentity retrieves the identity's cart, or a new empty cart when none
// has been persisted yet. A missing row is not an error.
func (repo *cartRepository) FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("identity = ?", string(identity)).
		First(&cartM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{Identity: identity}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart by identity")
	}

	return toCartDomain(&cartM), nil
}

// Save persists the cart's current contents, creating the row on first use.
// Items are replaced wholesale so the stored rows always mirror the entity.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	// Upsert the cart row first so item rows have a parent to reference.
	err := repo.db.WithContext(ctx).
		Where("identity = ?", string(cart.Identity)).
		FirstOrCreate(cartM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("concurrent cart creation")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart")
	}

	err = repo.db.WithContext(ctx).
		Where("cart_id = ?", cartM.ID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	items := make([]model.CartItemModel, 0, len(cart.ProductIDs))
	for idx, productID := range cart.ProductIDs {
		items = append(items, model.CartItemModel{
			CartID:    cartM.ID,
			ProductID: productID,
			Position:  idx,
		})
	}
	if len(items) > 0 {
		if err := repo.db.WithContext(ctx).Create(&items).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// Clear empties the identity's cart. Clearing an absent cart is a no-op.
func (repo *cartRepository) Clear(ctx context.Context, identity entity.Identity) error {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Where("identity = ?", string(identity)).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find cart for clearing")
	}

	err = repo.db.WithContext(ctx).
		Where("cart_id = ?", cartM.ID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:        data.ID,
		Identity:  entity.Identity(data.Identity),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, item := range data.Items {
		cart.ProductIDs = append(cart.ProductIDs, item.ProductID)
	}

	return cart
}

func fromCartDomain(cart *entity.Cart) *model.CartModel {
	if cart == nil {
		return nil
	}

	return &model.CartModel{
		ID:       cart.ID,
		Identity: string(cart.Identity),
	}
}
