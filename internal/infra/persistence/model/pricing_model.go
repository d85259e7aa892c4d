package model

import (
	"time"

	"github.com/google/uuid"
)

// PricingConfigModel mirrors the 'pricing_configs' table. One rule per
// (shop, paper type, print type) triple, enforced by a composite unique index.
type PricingConfigModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopOwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pricing_shop_paper_print"`
	PaperType   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_pricing_shop_paper_print"`
	PrintType   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_pricing_shop_paper_print"`
	SingleSided float64   `gorm:"not null"`
	DoubleSided float64   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingConfigModel) TableName() string {
	return "pricing_configs"
}
