package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutIntentModel mirrors the 'checkout_intents' table, keyed by the
// payment gateway's session id. The line-item snapshot is stored as JSONB so
// the intent stays valid even when catalog rows change afterwards.
type CheckoutIntentModel struct {
	SessionID   string          `gorm:"type:varchar(255);primary_key"`
	Identity    string          `gorm:"type:varchar(255);not null;index"`
	LineItems   []byte          `gorm:"type:jsonb;not null"`
	Total       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	RedirectURL string          `gorm:"type:text;not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	ExpiresAt   time.Time       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutIntentModel) TableName() string {
	return "checkout_intents"
}

// LineItemRecord is the JSON shape of one snapshot line inside
// CheckoutIntentModel.LineItems.
type LineItemRecord struct {
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	UnitAmount int64     `json:"unit_amount"`
	Currency   string    `json:"currency"`
	Quantity   int64     `json:"quantity"`
}
