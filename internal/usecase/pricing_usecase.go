package usecase

import (
	"context"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePricingInput defines the data required to create a pricing rule.
type CreatePricingInput struct {
	ShopOwnerID uuid.UUID
	PaperType   string
	PrintType   entity.PrintType
	SingleSided float64
	DoubleSided float64
}

// UpdatePricingInput defines the data required to update a pricing rule's prices.
type UpdatePricingInput struct {
	ID          uuid.UUID
	ShopOwnerID uuid.UUID
	SingleSided float64
	DoubleSided float64
}

// PricingUsecase defines the interface for pricing-rule business operations.
type PricingUsecase interface {
	// ListShopPricing returns every pricing rule of a shop.
	ListShopPricing(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PricingConfig, error)

	// Create adds a new rule. One rule per (paperType, printType) pair.
	Create(ctx context.Context, input *CreatePricingInput) (*entity.PricingConfig, error)

	// Update changes the prices of an existing rule, enforcing shop ownership.
	Update(ctx context.Context, input *UpdatePricingInput) (*entity.PricingConfig, error)

	// Delete removes a rule, enforcing shop ownership.
	Delete(ctx context.Context, shopOwnerID, id uuid.UUID) error
}
