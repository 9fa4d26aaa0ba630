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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCartService(txManager, newDiscardLogger())

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().CartRepo().Return(mockCartRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).
			Return(&entity.Product{ID: productID}, nil)
		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity}, nil)
		mockCartRepo.EXPECT().
			Save(ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
				return cart.Contains(productID) && len(cart.ProductIDs) == 1
			})).
			Return(nil)
	})

	err := fx.service.AddItem(ctx, identity, productID)

	require.NoError(t, err)
}

func TestCartService_AddItem_AlreadyPresent(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().CartRepo().Return(mockCartRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).
			Return(&entity.Product{ID: productID}, nil)
		// No Save expectation: adding a duplicate never writes.
		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{productID}}, nil)
	})

	err := fx.service.AddItem(ctx, identity, productID)

	require.NoError(t, err)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).
			Return(nil, repository.ErrProductNotFound)
	})

	err := fx.service.AddItem(ctx, identity, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	productID := uuid.New()
	otherID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(mockCartRepo)

		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{productID, otherID}}, nil)
		mockCartRepo.EXPECT().
			Save(ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
				return !cart.Contains(productID) && cart.Contains(otherID)
			})).
			Return(nil)
	})

	err := fx.service.RemoveItem(ctx, identity, productID)

	require.NoError(t, err)
}

func TestCartService_RemoveItem_AbsentIsNoop(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(mockCartRepo)

		// No Save expectation: removing an absent id never writes.
		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity}, nil)
	})

	err := fx.service.RemoveItem(ctx, identity, uuid.New())

	require.NoError(t, err)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("session:" + uuid.NewString())

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(mockCartRepo)
		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity}, nil)
	})

	view, err := fx.service.GetCart(ctx, identity)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_GetCart_TotalsFromFreshPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	ringID := uuid.New()
	pendantID := uuid.New()

	// The pendant's listed price changed after it was added to the cart; the
	// view must reflect the current catalog price.
	ring := &entity.Product{ID: ringID, Name: "Ring", Price: decimal.RequireFromString("10.00")}
	pendant := &entity.Product{ID: pendantID, Name: "Pendant", Price: decimal.RequireFromString("5.005")}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(mockCartRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{ringID, pendantID}}, nil)
		mockProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ringID, pendantID}).
			Return([]*entity.Product{ring, pendant}, nil)
	})

	view, err := fx.service.GetCart(ctx, identity)

	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Ring", view.Items[0].Product.Name)
	assert.Equal(t, "Pendant", view.Items[1].Product.Name)
	assert.Equal(t, "15.005", view.Total.String())
}

func TestCartService_GetCart_SkipsUnresolvableItems(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	ringID := uuid.New()
	goneID := uuid.New()

	ring := &entity.Product{ID: ringID, Name: "Ring", Price: decimal.RequireFromString("10.00")}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(mockCartRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{ringID, goneID}}, nil)
		mockProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ringID, goneID}).
			Return([]*entity.Product{ring}, nil)
	})

	view, err := fx.service.GetCart(ctx, identity)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "10", view.Total.String())
}
