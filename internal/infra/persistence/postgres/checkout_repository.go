package postgres

import (
	"context"
	"encoding/json"

	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkoutIntentRepository implements the domain.CheckoutIntentRepository
// interface using GORM. Line items are stored as a JSONB snapshot; they are
// immutable once the intent is created, so no relational detail table is kept.
type checkoutIntentRepository struct {
	db *gorm.DB
}

// NewCheckoutIntentRepository is the constructor for checkoutIntentRepository.
func NewCheckoutIntentRepository(db *gorm.DB) repository.CheckoutIntentRepository {
	return &checkoutIntentRepository{db: db}
}

// FindBySessionID retrieves the intent exchanged for the given gateway session.
func (repo *checkoutIntentRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.CheckoutIntent, error) {
	var intentM model.CheckoutIntentModel
	err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&intentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntentNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout intent")
	}

	return toCheckoutIntentDomain(&intentM)
}

// Create persists a new pending intent.
func (repo *checkoutIntentRepository) Create(ctx context.Context, intent *entity.CheckoutIntent) error {
	intentM, err := fromCheckoutIntentDomain(intent)
	if err != nil {
		return errors.Wrap(err, "failed to encode checkout intent")
	}

	if err := repo.db.WithContext(ctx).Create(intentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("gateway session already recorded")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout intent")
	}

	intent.CreatedAt = intentM.CreatedAt
	intent.UpdatedAt = intentM.UpdatedAt

	return nil
}

// UpdateStatus transitions an intent to a new status.
func (repo *checkoutIntentRepository) UpdateStatus(ctx context.Context, sessionID string, status entity.IntentStatus) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CheckoutIntentModel{}).
		Where("session_id = ?", sessionID).
		Update("status", string(status)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update checkout intent status")
	}

	return nil
}

// SupersedePending marks every pending intent of the identity as superseded.
func (repo *checkoutIntentRepository) SupersedePending(ctx context.Context, identity entity.Identity) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CheckoutIntentModel{}).
		Where("identity = ? AND status = ?", string(identity), string(entity.IntentStatusPending)).
		Update("status", string(entity.IntentStatusSuperseded)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to supersede pending intents")
	}

	return nil
}

func toCheckoutIntentDomain(data *model.CheckoutIntentModel) (*entity.CheckoutIntent, error) {
	var records []model.LineItemRecord
	if len(data.LineItems) > 0 {
		if err := json.Unmarshal(data.LineItems, &records); err != nil {
			return nil, errors.Wrap(err, "failed to decode line items")
		}
	}

	lineItems := make([]entity.LineItem, 0, len(records))
	for _, record := range records {
		lineItems = append(lineItems, entity.LineItem{
			ProductID:  record.ProductID,
			Name:       record.Name,
			UnitAmount: record.UnitAmount,
			Currency:   record.Currency,
			Quantity:   record.Quantity,
		})
	}

	return &entity.CheckoutIntent{
		SessionID:   data.SessionID,
		Identity:    entity.Identity(data.Identity),
		LineItems:   lineItems,
		Total:       data.Total,
		RedirectURL: data.RedirectURL,
		Status:      entity.IntentStatus(data.Status),
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func fromCheckoutIntentDomain(intent *entity.CheckoutIntent) (*model.CheckoutIntentModel, error) {
	records := make([]model.LineItemRecord, 0, len(intent.LineItems))
	for _, item := range intent.LineItems {
		records = append(records, model.LineItemRecord{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitAmount: item.UnitAmount,
			Currency:   item.Currency,
			Quantity:   item.Quantity,
		})
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return &model.CheckoutIntentModel{
		SessionID:   intent.SessionID,
		Identity:    string(intent.Identity),
		LineItems:   encoded,
		Total:       intent.Total,
		RedirectURL: intent.RedirectURL,
		Status:      string(intent.Status),
		ExpiresAt:   intent.ExpiresAt,
	}, nil
}
