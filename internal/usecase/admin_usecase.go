package usecase

import (
	"context"

	"printdesk/internal/domain/entity"
)

// AdminStatsOutput aggregates platform-wide counters for the admin dashboard.
type AdminStatsOutput struct {
	TotalUsers    int64                      `json:"totalUsers"`
	TotalShops    int64                      `json:"totalShops"`
	TotalJobs     int64                      `json:"totalJobs"`
	JobsByStatus  map[entity.JobStatus]int64 `json:"jobsByStatus"`
}

// AdminUsecase defines the interface for admin-only business operations.
type AdminUsecase interface {
	// ListUsers returns every registered user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetStats returns platform-wide aggregate counters.
	GetStats(ctx context.Context) (*AdminStatsOutput, error)
}
