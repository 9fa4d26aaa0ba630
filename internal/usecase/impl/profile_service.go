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
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads a user together with its merchant profile, if any.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup missed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user profile")
		}

		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpsertMerchantProfile creates the merchant profile on first call and updates
// it in place on every later call.
func (srv *profileService) UpsertMerchantProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertMerchantProfileInput) (*entity.MerchantProfile, error) {
	var profile *entity.MerchantProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "merchant upsert for unknown user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for merchant upsert")
		}

		if user.MerchantProfile == nil {
			user.MerchantProfile = &entity.MerchantProfile{UserID: user.ID}
			srv.log(ctx).Info("Creating merchant profile", slog.Any("userID", user.ID), slog.String("storeName", input.StoreName))
		}

		user.MerchantProfile.StoreName = input.StoreName
		user.MerchantProfile.Description = input.Description
		user.MerchantProfile.ContactInfo = input.ContactInfo

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save merchant profile")
		}

		profile = user.MerchantProfile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}
