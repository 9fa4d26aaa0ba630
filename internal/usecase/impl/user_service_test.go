package impl

import (
	"context"
	"testing"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	mockRepo "gemmarket/internal/mocks/repository"
	mockService "gemmarket/internal/mocks/service"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "gem_buyer",
		Email:    "buyer@example.com",
		Password: "longpassword",
	}

	fx.hasher.EXPECT().Hash("longpassword").Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(nil)
		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.Provider == entity.ProviderTypeEmail &&
					auth.ProviderUserID == input.Email &&
					auth.PasswordHash == "hashed-password"
			})).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "gem_buyer", output.User.Username)
	assert.Equal(t, "buyer@example.com", output.User.Email)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "gem_buyer",
		Email:    "taken@example.com",
		Password: "longpassword",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:       userID,
		Username: "gem_buyer",
		Email:    "buyer@example.com",
	}
	input := &usecase.LoginInput{
		Login:    "gem_buyer",
		Password: "longpassword",
	}

	fx.hasher.EXPECT().Check("longpassword", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, []string{"user"}).
		Return("signed-token", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockUserRepo.EXPECT().FindByLogin(ctx, "gem_buyer").Return(existingUser, nil)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, existingUser.Email).
			Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, existingUser, output.User)
}

func TestUserService_Login_MerchantGetsMerchantRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	merchant := &entity.User{
		ID:       userID,
		Username: "gem_seller",
		Email:    "seller@example.com",
		MerchantProfile: &entity.MerchantProfile{
			UserID:    userID,
			StoreName: "Ruby Corner",
		},
	}
	input := &usecase.LoginInput{
		Login:    "seller@example.com",
		Password: "longpassword",
	}

	fx.hasher.EXPECT().Check("longpassword", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, []string{"user", "merchant"}).
		Return("signed-token", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockUserRepo.EXPECT().FindByLogin(ctx, "seller@example.com").Return(merchant, nil)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, merchant.Email).
			Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestUserService_Login_UnknownLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Login:    "nobody",
		Password: "longpassword",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockUserRepo.EXPECT().FindByLogin(ctx, "nobody").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:       userID,
		Username: "gem_buyer",
		Email:    "buyer@example.com",
	}
	input := &usecase.LoginInput{
		Login:    "gem_buyer",
		Password: "wrongpassword",
	}

	fx.hasher.EXPECT().Check("wrongpassword", "stored-hash").Return(false)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockUserRepo.EXPECT().FindByLogin(ctx, "gem_buyer").Return(existingUser, nil)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, existingUser.Email).
			Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
