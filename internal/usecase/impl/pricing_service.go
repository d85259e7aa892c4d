package impl

import (
	"context"
	"log/slog"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pricingService implements the PricingUsecase interface.
type pricingService struct {
	txManager   repository.TransactionManager
	pricingRepo repository.PricingRepository
	logger      *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PricingRepo repository.PricingRepository
	Logger      *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		txManager:   params.TxManager,
		pricingRepo: params.PricingRepo,
		logger:      params.Logger,
	}
}

func (srv *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShopPricing returns every pricing rule of a shop.
func (srv *pricingService) ListShopPricing(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PricingConfig, error) {
	rules, err := srv.pricingRepo.FindByShop(ctx, shopOwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop pricing")
	}

	return rules, nil
}

// Create adds a new rule. One rule per (paperType, printType) pair.
func (srv *pricingService) Create(ctx context.Context, input *usecase.CreatePricingInput) (*entity.PricingConfig, error) {
	srv.log(ctx).Info("Creating pricing rule",
		slog.Any("shopOwnerID", input.ShopOwnerID),
		slog.String("paperType", input.PaperType),
		slog.String("printType", string(input.PrintType)),
	)

	if !input.PrintType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown print type")
	}
	if input.SingleSided < 0 || input.DoubleSided < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("prices must not be negative")
	}

	rule := &entity.PricingConfig{
		ShopOwnerID: input.ShopOwnerID,
		PaperType:   input.PaperType,
		PrintType:   input.PrintType,
		SingleSided: input.SingleSided,
		DoubleSided: input.DoubleSided,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PricingRepo().Create(ctx, rule)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create pricing rule", slog.Any("shopOwnerID", input.ShopOwnerID), slog.Any("error", err))

		return nil, err
	}

	return rule, nil
}

// Update changes the prices of an existing rule, enforcing shop ownership.
func (srv *pricingService) Update(ctx context.Context, input *usecase.UpdatePricingInput) (*entity.PricingConfig, error) {
	srv.log(ctx).Info("Updating pricing rule", slog.Any("id", input.ID))

	if input.SingleSided < 0 || input.DoubleSided < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("prices must not be negative")
	}

	var updated *entity.PricingConfig
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pricingRepo := repoFactory.PricingRepo()

		rule, findErr := srv.loadOwnedRule(ctx, pricingRepo, input.ShopOwnerID, input.ID)
		if findErr != nil {
			return findErr
		}

		rule.SingleSided = input.SingleSided
		rule.DoubleSided = input.DoubleSided
		if updateErr := pricingRepo.Update(ctx, rule); updateErr != nil {
			return updateErr
		}
		updated = rule

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update pricing rule", slog.Any("id", input.ID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete removes a rule, enforcing shop ownership.
func (srv *pricingService) Delete(ctx context.Context, shopOwnerID, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting pricing rule", slog.Any("id", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pricingRepo := repoFactory.PricingRepo()

		if _, findErr := srv.loadOwnedRule(ctx, pricingRepo, shopOwnerID, id); findErr != nil {
			return findErr
		}

		return pricingRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete pricing rule", slog.Any("id", id), slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *pricingService) loadOwnedRule(ctx context.Context, pricingRepo repository.PricingRepository, shopOwnerID, id uuid.UUID) (*entity.PricingConfig, error) {
	rule, err := pricingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			return nil, domainerrors.ErrPricingNotFound
		}

		return nil, errors.Wrap(err, "failed to load pricing rule")
	}

	if rule.ShopOwnerID != shopOwnerID {
		return nil, domainerrors.ErrPermissionDenied.WrapMessage("pricing rule belongs to another shop")
	}

	return rule, nil
}
