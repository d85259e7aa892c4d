package repository

import (
	"context"
	"errors"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPricingNotFound is returned when a pricing configuration does not exist.
var ErrPricingNotFound = errors.New("pricing configuration not found")

// PricingRepository defines the standard operations for pricing-rule persistence.
type PricingRepository interface {
	// FindByID retrieves a single pricing rule.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PricingConfig, error)

	// FindByShop retrieves every pricing rule of a shop.
	FindByShop(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PricingConfig, error)

	// FindForJob resolves the rule for a (shop, paperType, printType) triple.
	FindForJob(ctx context.Context, shopOwnerID uuid.UUID, paperType string, printType entity.PrintType) (*entity.PricingConfig, error)

	// Create persists a new pricing rule.
	Create(ctx context.Context, cfg *entity.PricingConfig) error

	// Update modifies an existing pricing rule.
	Update(ctx context.Context, cfg *entity.PricingConfig) error

	// Delete removes a pricing rule.
	Delete(ctx context.Context, id uuid.UUID) error
}
