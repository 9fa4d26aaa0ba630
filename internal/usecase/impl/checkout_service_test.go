package impl

import (
	"context"
	"testing"
	"time"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/domain/service"
	mockRepo "gemmarket/internal/mocks/repository"
	mockService "gemmarket/internal/mocks/service"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	gateway   *mockService.MockPaymentGateway
	publisher *mockService.MockEventPublisher
	qrcode    *mockService.MockQRCodeService
	now       time.Time
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockPaymentGateway(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrcode := mockService.NewMockQRCodeService(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		Gateway:   gateway,
		Publisher: publisher,
		QRCode:    qrcode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*checkoutService)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return checkoutServiceFixtures{
		service:   svc,
		txManager: txManager,
		gateway:   gateway,
		publisher: publisher,
		qrcode:    qrcode,
		now:       now,
	}
}

func TestCheckoutService_BeginCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	ringID := uuid.New()
	pendantID := uuid.New()

	ring := &entity.Product{ID: ringID, Name: "Ring", Price: decimal.RequireFromString("10.00")}
	pendant := &entity.Product{ID: pendantID, Name: "Pendant", Price: decimal.RequireFromString("5.005")}

	// Snapshot transaction.
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

	// Sub-cent amounts are truncated toward zero: 5.005 becomes 500 cents.
	fx.gateway.EXPECT().
		CreateSession(ctx, mock.MatchedBy(func(items []entity.LineItem) bool {
			return len(items) == 2 &&
				items[0].UnitAmount == 1000 && items[1].UnitAmount == 500 &&
				items[0].Currency == "usd" && items[1].Currency == "usd" &&
				items[0].Quantity == 1 && items[1].Quantity == 1
		}), "https://shop.example.com/payments/success", "https://shop.example.com/payments/cancel").
		Return(&service.GatewaySession{SessionID: "sess_123", RedirectURL: "https://pay.example.com/sess_123"}, nil)

	// Intent transaction.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)

		mockIntentRepo.EXPECT().SupersedePending(ctx, identity).Return(nil)
		mockIntentRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(intent *entity.CheckoutIntent) bool {
				return intent.SessionID == "sess_123" &&
					intent.Status == entity.IntentStatusPending &&
					intent.Total.String() == "15.005" &&
					intent.ExpiresAt.Equal(fx.now.Add(time.Hour))
			})).
			Return(nil)
	})

	fx.qrcode.EXPECT().GeneratePaymentQR("https://pay.example.com/sess_123").
		Return([]byte("png-bytes"), nil)

	output, err := fx.service.BeginCheckout(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "sess_123", output.SessionID)
	assert.Equal(t, "https://pay.example.com/sess_123", output.RedirectURL)
	assert.Equal(t, "15.005", output.Total)
	assert.Equal(t, []byte("png-bytes"), output.QRCodePNG)
}

func TestCheckoutService_BeginCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())

	// The gateway is never contacted for an empty cart.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(mockCartRepo)
		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity}, nil)
	})

	output, err := fx.service.BeginCheckout(ctx, identity)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestCheckoutService_BeginCheckout_StaleCartItem(t *testing.T) {
	fx := createTestCheckoutService(t)

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

	output, err := fx.service.BeginCheckout(ctx, identity)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STALE_CART_ITEM", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), goneID.String())
}

func TestCheckoutService_BeginCheckout_GatewayUnavailable(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	ringID := uuid.New()

	ring := &entity.Product{ID: ringID, Name: "Ring", Price: decimal.RequireFromString("10.00")}

	// Only the snapshot transaction runs; no intent is written on failure.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(mockCartRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{ringID}}, nil)
		mockProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ringID}).
			Return([]*entity.Product{ring}, nil)
	})

	fx.gateway.EXPECT().
		CreateSession(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.BeginCheckout(ctx, identity)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGatewayUnavailable))
}

func pendingIntent(identity entity.Identity, expiresAt time.Time) *entity.CheckoutIntent {
	return &entity.CheckoutIntent{
		SessionID: "sess_123",
		Identity:  identity,
		LineItems: []entity.LineItem{
			{ProductID: uuid.New(), Name: "Ring", UnitAmount: 1000, Currency: "usd", Quantity: 1},
		},
		Total:     decimal.RequireFromString("10.00"),
		Status:    entity.IntentStatusPending,
		ExpiresAt: expiresAt,
	}
}

func TestCheckoutService_OnSuccess_FinalizesOnce(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	intent := pendingIntent(identity, fx.now.Add(time.Hour))

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		factory.EXPECT().CartRepo().Return(mockCartRepo)

		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_123").Return(intent, nil)
		mockCartRepo.EXPECT().Clear(ctx, identity).Return(nil)
		mockIntentRepo.EXPECT().
			UpdateStatus(ctx, "sess_123", entity.IntentStatusFinalized).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishCheckoutCompleted(ctx, mock.MatchedBy(func(event *service.CheckoutCompletedEvent) bool {
			return event.SessionID == "sess_123" &&
				event.Identity == string(identity) &&
				event.Total == "10" &&
				event.Currency == "usd"
		})).
		Return(nil)

	err := fx.service.OnSuccess(ctx, "sess_123")

	require.NoError(t, err)
}

func TestCheckoutService_OnSuccess_ReplayIsNoop(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	intent := pendingIntent(identity, fx.now.Add(time.Hour))
	intent.Status = entity.IntentStatusFinalized

	// A replay neither clears the cart nor publishes a second event.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_123").Return(intent, nil)
	})

	err := fx.service.OnSuccess(ctx, "sess_123")

	require.NoError(t, err)
}

func TestCheckoutService_OnSuccess_UnknownSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_unknown").
			Return(nil, repository.ErrIntentNotFound)
	})

	err := fx.service.OnSuccess(ctx, "sess_unknown")

	require.NoError(t, err)
}

func TestCheckoutService_OnSuccess_ExpiredIntent(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	intent := pendingIntent(identity, fx.now.Add(-time.Minute))

	// Past the TTL the callback marks the intent expired and applies no side
	// effects: the cart stays and nothing is published.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)

		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_123").Return(intent, nil)
		mockIntentRepo.EXPECT().
			UpdateStatus(ctx, "sess_123", entity.IntentStatusExpired).
			Return(nil)
	})

	err := fx.service.OnSuccess(ctx, "sess_123")

	require.NoError(t, err)
}

func TestCheckoutService_OnCancel_DiscardsPendingIntent(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	intent := pendingIntent(identity, fx.now.Add(time.Hour))

	// Cancelling leaves the cart untouched: no CartRepo expectation.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)

		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_123").Return(intent, nil)
		mockIntentRepo.EXPECT().
			UpdateStatus(ctx, "sess_123", entity.IntentStatusCancelled).
			Return(nil)
	})

	err := fx.service.OnCancel(ctx, "sess_123")

	require.NoError(t, err)
}

func TestCheckoutService_OnCancel_AfterSuccessIsNoop(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	intent := pendingIntent(identity, fx.now.Add(time.Hour))
	intent.Status = entity.IntentStatusFinalized

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_123").Return(intent, nil)
	})

	err := fx.service.OnCancel(ctx, "sess_123")

	require.NoError(t, err)
}

func TestCheckoutService_OnCancel_UnknownSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		mockIntentRepo.EXPECT().FindBySessionID(ctx, "sess_unknown").
			Return(nil, repository.ErrIntentNotFound)
	})

	err := fx.service.OnCancel(ctx, "sess_unknown")

	require.NoError(t, err)
}

func TestCheckoutService_BeginCheckout_QRFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := entity.Identity("user:" + uuid.NewString())
	ringID := uuid.New()

	ring := &entity.Product{ID: ringID, Name: "Ring", Price: decimal.RequireFromString("10.00")}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(mockCartRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockCartRepo.EXPECT().FindByIdentity(ctx, identity).
			Return(&entity.Cart{Identity: identity, ProductIDs: []uuid.UUID{ringID}}, nil)
		mockProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ringID}).
			Return([]*entity.Product{ring}, nil)
	})

	fx.gateway.EXPECT().
		CreateSession(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.GatewaySession{SessionID: "sess_456", RedirectURL: "https://pay.example.com/sess_456"}, nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockIntentRepo := mockRepo.NewMockCheckoutIntentRepository(t)
		factory.EXPECT().CheckoutIntentRepo().Return(mockIntentRepo)
		mockIntentRepo.EXPECT().SupersedePending(ctx, identity).Return(nil)
		mockIntentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CheckoutIntent")).Return(nil)
	})

	fx.qrcode.EXPECT().GeneratePaymentQR("https://pay.example.com/sess_456").
		Return(nil, errors.New("encode failed"))

	output, err := fx.service.BeginCheckout(ctx, identity)

	require.NoError(t, err)
	assert.Nil(t, output.QRCodePNG)
	assert.Equal(t, "sess_456", output.SessionID)
}
