package postgres

import (
	"context"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products for a set of ids. Missing ids are simply
// absent from the result.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomainList(productMs), nil
}

// FindAll retrieves every product, ordered by creation time.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(productMs), nil
}

// FindByMerchant retrieves a merchant's products, ordered by creation time.
func (repo *productRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return toProductDomainList(productMs), nil
}

// Search performs a case-insensitive substring match against name, material,
// and description.
func (repo *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	pattern := "%" + query + "%"

	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR material ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainList(productMs), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("product references unknown merchant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product. MerchantID is carried through as-is;
// ownership checks happen in the usecase layer.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ID,
		MerchantID:      data.MerchantID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ImageRef:        data.ImageRef,
		Material:        data.Material,
		Weight:          data.Weight,
		Carat:           data.Carat,
		Color:           data.Color,
		Clarity:         data.Clarity,
		CountryOfOrigin: data.CountryOfOrigin,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toProductDomainList(data []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for idx := range data {
		products = append(products, toProductDomain(&data[idx]))
	}

	return products
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	if product == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              product.ID,
		MerchantID:      product.MerchantID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		ImageRef:        product.ImageRef,
		Material:        product.Material,
		Weight:          product.Weight,
		Carat:           product.Carat,
		Color:           product.Color,
		Clarity:         product.Clarity,
		CountryOfOrigin: product.CountryOfOrigin,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}
