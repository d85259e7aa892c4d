package impl

import (
	"context"
	"log/slog"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/repository"
	"printdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo     repository.UserRepository
	printJobRepo repository.PrintJobRepository
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PrintJobRepo repository.PrintJobRepository
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:     params.UserRepo,
		printJobRepo: params.PrintJobRepo,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every registered user, newest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetStats returns platform-wide aggregate counters.
func (srv *adminService) GetStats(ctx context.Context) (*usecase.AdminStatsOutput, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	jobCounts, err := srv.printJobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count print jobs")
	}

	stats := &usecase.AdminStatsOutput{
		TotalUsers:   int64(len(users)),
		JobsByStatus: jobCounts,
	}
	for _, user := range users {
		if user.ShopProfile != nil {
			stats.TotalShops++
		}
	}
	for _, count := range jobCounts {
		stats.TotalJobs += count
	}

	return stats, nil
}
