package repository

import (
	"context"
	"errors"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrintJobNotFound is returned when a print job does not exist.
var ErrPrintJobNotFound = errors.New("print job not found")

// PrintJobRepository defines the standard operations for print-job persistence.
type PrintJobRepository interface {
	// FindByID retrieves a single job with its files.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PrintJob, error)

	// FindByShop retrieves every job belonging to a shop, newest first,
	// with files preloaded.
	FindByShop(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error)

	// Create persists a new job together with its files.
	Create(ctx context.Context, job *entity.PrintJob) error

	// UpdateStatus persists a status transition and bumps the job's version.
	// The caller is responsible for validating the transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error)

	// CountByStatus returns the number of jobs per status across all shops.
	// Admin-only surface.
	CountByStatus(ctx context.Context) (map[entity.JobStatus]int64, error)
}
