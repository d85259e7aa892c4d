package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printdesk/internal/domain/entity"
	mockRepo "printdesk/internal/mocks/repository"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	userRepo     *mockRepo.MockUserRepository
	printJobRepo *mockRepo.MockPrintJobRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	printJobRepo := mockRepo.NewMockPrintJobRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		UserRepo:     userRepo,
		PrintJobRepo: printJobRepo,
		Logger:       logger,
	})

	return adminServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		printJobRepo: printJobRepo,
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Role: entity.RoleAdmin},
		{ID: uuid.New(), Role: entity.RoleShopOwner},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_GetStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	users := []*entity.User{
		{ID: uuid.New(), Role: entity.RoleAdmin},
		{
			ID:          ownerID,
			Role:        entity.RoleShopOwner,
			ShopProfile: &entity.ShopProfile{UserID: ownerID, ShopName: "Corner Print Shop"},
		},
	}
	jobCounts := map[entity.JobStatus]int64{
		entity.JobStatusPending:    3,
		entity.JobStatusProcessing: 1,
		entity.JobStatusCompleted:  6,
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)
	fx.printJobRepo.EXPECT().CountByStatus(ctx).Return(jobCounts, nil)

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalShops)
	assert.Equal(t, int64(10), stats.TotalJobs)
	assert.Equal(t, jobCounts, stats.JobsByStatus)
}

func TestAdminService_GetStats_UserRepoError(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

	stats, err := fx.service.GetStats(ctx)

	assert.Error(t, err)
	assert.Nil(t, stats)
}
