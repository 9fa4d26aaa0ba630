package usecase

import (
	"context"

	"gemmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertMerchantProfileInput carries the merchant profile fields. The first
// call creates the profile; every later call updates it in place.
type UpsertMerchantProfileInput struct {
	StoreName   string `json:"store_name" validate:"required,max=120"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info" validate:"max=200"`
}

// ProfileUsecase defines profile-related business operations.
type ProfileUsecase interface {
	// GetProfile loads a user together with its merchant profile, if any.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpsertMerchantProfile creates the user's merchant profile on first call
	// and updates it on subsequent calls (never create-then-error).
	UpsertMerchantProfile(ctx context.Context, userID uuid.UUID, input *UpsertMerchantProfileInput) (*entity.MerchantProfile, error)
}
