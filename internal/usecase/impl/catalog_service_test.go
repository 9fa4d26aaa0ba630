package impl

import (
	"context"
	"testing"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	mockRepo "gemmarket/internal/mocks/repository"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCatalogService(txManager, newDiscardLogger())

	return catalogServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func merchantUser(userID uuid.UUID) *entity.User {
	return &entity.User{
		ID:       userID,
		Username: "gem_seller",
		MerchantProfile: &entity.MerchantProfile{
			UserID:    userID,
			StoreName: "Ruby Corner",
		},
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ProductInput{
		Name:     "Burmese Ruby Ring",
		Price:    "1250.50",
		Material: "ruby",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(merchantUser(userID), nil)
		mockProductRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.MerchantID == userID &&
					p.Name == "Burmese Ruby Ring" &&
					p.Price.Equal(decimal.RequireFromString("1250.50"))
			})).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, product.MerchantID)
	assert.Equal(t, "ruby", product.Material)
}

func TestCatalogService_CreateProduct_WithoutMerchantProfile(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ProductInput{Name: "Ring", Price: "10"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	})

	product, err := fx.service.CreateProduct(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantProfileRequired))
}

func TestCatalogService_CreateProduct_InvalidPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	cases := []struct {
		name  string
		price string
	}{
		{name: "negative", price: "-5"},
		{name: "not a number", price: "five dollars"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := &usecase.ProductInput{Name: "Ring", Price: tc.price}

			product, err := fx.service.CreateProduct(ctx, uuid.New(), input)

			assert.Error(t, err)
			assert.Nil(t, product)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
		})
	}
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.ProductInput{
		Name:  "Burmese Ruby Ring",
		Price: "999.99",
	}

	existing := &entity.Product{
		ID:         productID,
		MerchantID: userID,
		Name:       "Old Name",
		Price:      decimal.RequireFromString("1250.50"),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
		mockProductRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, userID, productID, input)

	require.NoError(t, err)
	assert.Equal(t, "Burmese Ruby Ring", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("999.99")))
	assert.Equal(t, userID, product.MerchantID)
}

func TestCatalogService_UpdateProduct_OwnershipViolation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	intruderID := uuid.New()
	productID := uuid.New()
	input := &usecase.ProductInput{Name: "Ring", Price: "10"}

	existing := &entity.Product{
		ID:         productID,
		MerchantID: ownerID,
		Price:      decimal.RequireFromString("10"),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	})

	product, err := fx.service.UpdateProduct(ctx, intruderID, productID, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_SearchProducts_EmptyQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	// No Execute expectation: an empty query never reaches the repository.
	products, err := fx.service.SearchProducts(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_SearchProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Ruby Ring", Material: "ruby"},
		{ID: uuid.New(), Name: "Silver Band", Description: "with ruby accents"},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().Search(ctx, "ruby").Return(expected, nil)
	})

	products, err := fx.service.SearchProducts(ctx, "ruby")

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
