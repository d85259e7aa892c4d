package entity

import (
	"time"

	"github.com/google/uuid"
)

// PricingConfig is a per-shop price rule keyed by paper type and color mode.
// SingleSided and DoubleSided are per-page prices in the shop's currency.
type PricingConfig struct {
	ID          uuid.UUID `json:"id"`
	ShopOwnerID uuid.UUID `json:"shopOwnerId"`
	PaperType   string    `json:"paperType"`
	PrintType   PrintType `json:"printType"`
	SingleSided float64   `json:"singleSided"`
	DoubleSided float64   `json:"doubleSided"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PricePerPage returns the per-page price for the requested side mode.
func (p *PricingConfig) PricePerPage(side PrintSide) float64 {
	if side == PrintSideDouble {
		return p.DoubleSided
	}

	return p.SingleSided
}
