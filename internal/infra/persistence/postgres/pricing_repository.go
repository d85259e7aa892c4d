package postgres

import (
	"context"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pricingRepository implements the domain.PricingRepository interface using GORM.
type pricingRepository struct {
	db *gorm.DB
}

// NewPricingRepository is the constructor for pricingRepository.
func NewPricingRepository(db *gorm.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

// FindByID retrieves a single pricing rule.
func (repo *pricingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PricingConfig, error) {
	var cfgM model.PricingConfigModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cfgM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pricing rule by id")
	}

	return toPricingDomain(&cfgM), nil
}

// FindByShop retrieves every pricing rule of a shop.
func (repo *pricingRepository) FindByShop(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PricingConfig, error) {
	var models []*model.PricingConfigModel
	err := repo.db.WithContext(ctx).
		Where("shop_owner_id = ?", shopOwnerID).
		Order("paper_type, print_type").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules for shop")
	}

	rules := make([]*entity.PricingConfig, 0, len(models))
	for _, m := range models {
		rules = append(rules, toPricingDomain(m))
	}

	return rules, nil
}

// FindForJob resolves the rule for a (shop, paperType, printType) triple.
func (repo *pricingRepository) FindForJob(ctx context.Context, shopOwnerID uuid.UUID, paperType string, printType entity.PrintType) (*entity.PricingConfig, error) {
	var cfgM model.PricingConfigModel
	err := repo.db.WithContext(ctx).
		Where("shop_owner_id = ? AND paper_type = ? AND print_type = ?", shopOwnerID, paperType, string(printType)).
		First(&cfgM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve pricing rule for job")
	}

	return toPricingDomain(&cfgM), nil
}

// Create persists a new pricing rule.
func (repo *pricingRepository) Create(ctx context.Context, cfg *entity.PricingConfig) error {
	cfgM := fromPricingDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(cfgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPricingAlreadyExists.WrapMessage("pricing rule for this paper and print type already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pricing rule")
	}

	cfg.ID = cfgM.ID
	cfg.CreatedAt = cfgM.CreatedAt

	return nil
}

// Update modifies an existing pricing rule.
func (repo *pricingRepository) Update(ctx context.Context, cfg *entity.PricingConfig) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PricingConfigModel{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]any{
			"single_sided": cfg.SingleSided,
			"double_sided": cfg.DoubleSided,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pricing rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPricingNotFound
	}

	return nil
}

// Delete removes a pricing rule.
func (repo *pricingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PricingConfigModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pricing rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPricingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPricingDomain(data *model.PricingConfigModel) *entity.PricingConfig {
	if data == nil {
		return nil
	}

	return &entity.PricingConfig{
		ID:          data.ID,
		ShopOwnerID: data.ShopOwnerID,
		PaperType:   data.PaperType,
		PrintType:   entity.PrintType(data.PrintType),
		SingleSided: data.SingleSided,
		DoubleSided: data.DoubleSided,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPricingDomain(data *entity.PricingConfig) *model.PricingConfigModel {
	if data == nil {
		return nil
	}

	return &model.PricingConfigModel{
		ID:          data.ID,
		ShopOwnerID: data.ShopOwnerID,
		PaperType:   data.PaperType,
		PrintType:   string(data.PrintType),
		SingleSided: data.SingleSided,
		DoubleSided: data.DoubleSided,
	}
}
