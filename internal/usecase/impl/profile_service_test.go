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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProfileService(txManager, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:       userID,
		Username: "gem_buyer",
		Email:    "buyer@example.com",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)
	})

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpsertMerchantProfile_CreatesProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpsertMerchantProfileInput{
		StoreName:   "Ruby Corner",
		Description: "Hand-picked rubies",
		ContactInfo: "ruby@example.com",
	}

	existingUser := &entity.User{
		ID:       userID,
		Username: "gem_seller",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	profile, err := fx.service.UpsertMerchantProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "Ruby Corner", profile.StoreName)
	assert.True(t, existingUser.IsMerchant())
}

func TestProfileService_UpsertMerchantProfile_UpdatesInPlace(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpsertMerchantProfileInput{
		StoreName:   "Ruby Corner Renamed",
		Description: "New description",
		ContactInfo: "new@example.com",
	}

	existingUser := &entity.User{
		ID: userID,
		MerchantProfile: &entity.MerchantProfile{
			UserID:    userID,
			StoreName: "Ruby Corner",
		},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, existingUser).Return(nil)
	})

	profile, err := fx.service.UpsertMerchantProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Ruby Corner Renamed", profile.StoreName)
	assert.Equal(t, "New description", profile.Description)
	assert.Same(t, existingUser.MerchantProfile, profile)
}

func TestProfileService_UpsertMerchantProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpsertMerchantProfileInput{StoreName: "Ruby Corner"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	profile, err := fx.service.UpsertMerchantProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
