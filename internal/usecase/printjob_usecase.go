package usecase

import (
	"context"
	"io"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitFileInput is one uploaded document of a job submission. Content is
// streamed into blob storage, never buffered whole.
type SubmitFileInput struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// SubmitPrintJobInput defines the data a customer provides when submitting a job.
type SubmitPrintJobInput struct {
	ShopOwnerID   uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	NoofCopies    int
	PrintType     entity.PrintType
	PaperType     string
	PrintSide     entity.PrintSide
	SpecificPages string
	TotalPages    int
	Files         []SubmitFileInput
}

// UpdateJobStatusInput defines a status transition request from a shop dashboard.
type UpdateJobStatusInput struct {
	JobID       uuid.UUID
	ShopOwnerID uuid.UUID
	Status      entity.JobStatus
}

// PrintJobUsecase defines the interface for print-job business operations.
type PrintJobUsecase interface {
	// Submit stores the uploaded documents, prices the job, assigns a token
	// number and announces the new job to the shop's room.
	Submit(ctx context.Context, input *SubmitPrintJobInput) (*entity.PrintJob, error)

	// ListShopJobs returns every job of a shop, newest first.
	ListShopJobs(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error)

	// GetJob returns one job, enforcing shop ownership.
	GetJob(ctx context.Context, shopOwnerID, jobID uuid.UUID) (*entity.PrintJob, error)

	// UpdateStatus applies a forward-only status transition and announces it.
	UpdateStatus(ctx context.Context, input *UpdateJobStatusInput) (*entity.PrintJob, error)
}
