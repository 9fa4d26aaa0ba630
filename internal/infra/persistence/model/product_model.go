package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Price is stored as numeric so
// sub-cent listings survive the round trip unchanged.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(120);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ImageRef    string          `gorm:"type:varchar(255)"`

	Material        string `gorm:"type:varchar(120);index"`
	Weight          string `gorm:"type:varchar(120)"`
	Carat           string `gorm:"type:varchar(120)"`
	Color           string `gorm:"type:varchar(120)"`
	Clarity         string `gorm:"type:varchar(120)"`
	CountryOfOrigin string `gorm:"type:varchar(120)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
