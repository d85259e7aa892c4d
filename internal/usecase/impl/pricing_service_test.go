package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	mockRepo "printdesk/internal/mocks/repository"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pricingServiceFixtures holds all test dependencies for pricing service tests.
type pricingServiceFixtures struct {
	service     usecase.PricingUsecase
	txManager   *mockRepo.MockTransactionManager
	pricingRepo *mockRepo.MockPricingRepository
}

func createTestPricingService(t *testing.T) pricingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	pricingRepo := mockRepo.NewMockPricingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPricingService(PricingServiceParams{
		TxManager:   txManager,
		PricingRepo: pricingRepo,
		Logger:      logger,
	})

	return pricingServiceFixtures{
		service:     service,
		txManager:   txManager,
		pricingRepo: pricingRepo,
	}
}

func TestPricingService_Create_Success(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	input := &usecase.CreatePricingInput{
		ShopOwnerID: uuid.New(),
		PaperType:   "A4",
		PrintType:   entity.PrintTypeColor,
		SingleSided: 5.0,
		DoubleSided: 8.0,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPricingRepo := mockRepo.NewMockPricingRepository(t)

			mockFactory.EXPECT().PricingRepo().Return(mockPricingRepo)

			mockPricingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PricingConfig")).
				Run(func(ctx context.Context, rule *entity.PricingConfig) {
					rule.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	rule, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, input.ShopOwnerID, rule.ShopOwnerID)
	assert.Equal(t, entity.PrintTypeColor, rule.PrintType)
	assert.InDelta(t, 5.0, rule.SingleSided, 0.0001)
}

func TestPricingService_Create_Duplicate(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	input := &usecase.CreatePricingInput{
		ShopOwnerID: uuid.New(),
		PaperType:   "A4",
		PrintType:   entity.PrintTypeColor,
		SingleSided: 5.0,
		DoubleSided: 8.0,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrPricingAlreadyExists.WrapMessage("pricing rule for this paper and print type already exists"))

	rule, err := fx.service.Create(ctx, input)

	assert.Nil(t, rule)
	assert.True(t, errors.Is(err, domainerrors.ErrPricingAlreadyExists))
}

func TestPricingService_Create_InvalidInput(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreatePricingInput
	}{
		{
			name: "unknown print type",
			input: &usecase.CreatePricingInput{
				ShopOwnerID: uuid.New(),
				PaperType:   "A4",
				PrintType:   entity.PrintType("SEPIA"),
				SingleSided: 1.0,
			},
		},
		{
			name: "negative price",
			input: &usecase.CreatePricingInput{
				ShopOwnerID: uuid.New(),
				PaperType:   "A4",
				PrintType:   entity.PrintTypeColor,
				SingleSided: -1.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := fx.service.Create(ctx, tt.input)

			assert.Nil(t, rule)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPricingService_Update_Success(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	ruleID := uuid.New()
	input := &usecase.UpdatePricingInput{
		ID:          ruleID,
		ShopOwnerID: shopOwnerID,
		SingleSided: 2.0,
		DoubleSided: 3.5,
	}

	existing := &entity.PricingConfig{
		ID:          ruleID,
		ShopOwnerID: shopOwnerID,
		PaperType:   "A4",
		PrintType:   entity.PrintTypeBlackWhite,
		SingleSided: 1.0,
		DoubleSided: 1.5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPricingRepo := mockRepo.NewMockPricingRepository(t)

			mockFactory.EXPECT().PricingRepo().Return(mockPricingRepo)

			mockPricingRepo.EXPECT().FindByID(ctx, ruleID).Return(existing, nil)
			mockPricingRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.PricingConfig")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, updated.SingleSided, 0.0001)
	assert.InDelta(t, 3.5, updated.DoubleSided, 0.0001)
}

func TestPricingService_Update_WrongShop(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	ruleID := uuid.New()
	input := &usecase.UpdatePricingInput{
		ID:          ruleID,
		ShopOwnerID: uuid.New(),
		SingleSided: 2.0,
		DoubleSided: 3.5,
	}

	existing := &entity.PricingConfig{
		ID:          ruleID,
		ShopOwnerID: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPricingRepo := mockRepo.NewMockPricingRepository(t)

			mockFactory.EXPECT().PricingRepo().Return(mockPricingRepo)
			mockPricingRepo.EXPECT().FindByID(ctx, ruleID).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPermissionDenied.WrapMessage("pricing rule belongs to another shop"))

	updated, err := fx.service.Update(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestPricingService_Delete_Success(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	ruleID := uuid.New()

	existing := &entity.PricingConfig{ID: ruleID, ShopOwnerID: shopOwnerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPricingRepo := mockRepo.NewMockPricingRepository(t)

			mockFactory.EXPECT().PricingRepo().Return(mockPricingRepo)
			mockPricingRepo.EXPECT().FindByID(ctx, ruleID).Return(existing, nil)
			mockPricingRepo.EXPECT().Delete(ctx, ruleID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, shopOwnerID, ruleID)

	require.NoError(t, err)
}

func TestPricingService_Delete_NotFound(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	ruleID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPricingRepo := mockRepo.NewMockPricingRepository(t)

			mockFactory.EXPECT().PricingRepo().Return(mockPricingRepo)
			mockPricingRepo.EXPECT().FindByID(ctx, ruleID).Return(nil, repository.ErrPricingNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPricingNotFound)

	err := fx.service.Delete(ctx, uuid.New(), ruleID)

	assert.True(t, errors.Is(err, domainerrors.ErrPricingNotFound))
}

func TestPricingService_ListShopPricing(t *testing.T) {
	fx := createTestPricingService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	rules := []*entity.PricingConfig{
		{ID: uuid.New(), ShopOwnerID: shopOwnerID, PaperType: "A4", PrintType: entity.PrintTypeBlackWhite},
		{ID: uuid.New(), ShopOwnerID: shopOwnerID, PaperType: "A4", PrintType: entity.PrintTypeColor},
	}

	fx.pricingRepo.EXPECT().FindByShop(ctx, shopOwnerID).Return(rules, nil)

	got, err := fx.service.ListShopPricing(ctx, shopOwnerID)

	require.NoError(t, err)
	assert.Equal(t, rules, got)
}
