package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// printJobService implements the PrintJobUsecase interface.
type printJobService struct {
	txManager    repository.TransactionManager
	printJobRepo repository.PrintJobRepository
	pricingRepo  repository.PricingRepository
	userRepo     repository.UserRepository
	fileStorage  service.FileStorage
	publisher    service.JobEventPublisher
	logger       *slog.Logger
}

// PrintJobServiceParams holds dependencies for PrintJobService, injected by Fx.
type PrintJobServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PrintJobRepo repository.PrintJobRepository
	PricingRepo  repository.PricingRepository
	UserRepo     repository.UserRepository
	FileStorage  service.FileStorage
	Publisher    service.JobEventPublisher
	Logger       *slog.Logger
}

// NewPrintJobService is the constructor for printJobService.
func NewPrintJobService(params PrintJobServiceParams) usecase.PrintJobUsecase {
	return &printJobService{
		txManager:    params.TxManager,
		printJobRepo: params.PrintJobRepo,
		pricingRepo:  params.PricingRepo,
		userRepo:     params.UserRepo,
		fileStorage:  params.FileStorage,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *printJobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the uploaded documents, prices the job, assigns a token number
// and announces the new job to the shop's room.
func (srv *printJobService) Submit(ctx context.Context, input *usecase.SubmitPrintJobInput) (*entity.PrintJob, error) {
	srv.log(ctx).Info("Submitting print job", slog.Any("shopOwnerID", input.ShopOwnerID), slog.Int("files", len(input.Files)))

	if len(input.Files) == 0 {
		return nil, domainerrors.ErrPrintJobNoFiles
	}
	if !input.PrintType.IsValid() || !input.PrintSide.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown print type or side")
	}
	if input.NoofCopies < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("number of copies must be at least 1")
	}

	shop, err := srv.userRepo.FindByID(ctx, input.ShopOwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("shop not found")
		}

		return nil, errors.Wrap(err, "failed to load shop for job submission")
	}
	if shop.ShopProfile == nil {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("shop not found")
	}

	pricing, err := srv.pricingRepo.FindForJob(ctx, input.ShopOwnerID, input.PaperType, input.PrintType)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			return nil, domainerrors.ErrPricingNotConfigured
		}

		return nil, errors.Wrap(err, "failed to resolve pricing for job submission")
	}

	// Pages default to one per uploaded document when the customer does not
	// declare a page count.
	totalPages := input.TotalPages
	if totalPages <= 0 {
		totalPages = len(input.Files)
	}

	totalCost := pricing.PricePerPage(input.PrintSide) * float64(totalPages) * float64(input.NoofCopies)

	// Allocate the job ID up front so uploads land under a job-scoped key.
	jobID := uuid.New()
	files, err := srv.storeFiles(ctx, jobID, input.Files)
	if err != nil {
		return nil, err
	}

	job := &entity.PrintJob{
		ID:            jobID,
		ShopOwnerID:   input.ShopOwnerID,
		TokenNumber:   newTokenNumber(),
		Status:        entity.JobStatusPending,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		NoofCopies:    input.NoofCopies,
		PrintType:     input.PrintType,
		PaperType:     input.PaperType,
		PrintSide:     input.PrintSide,
		SpecificPages: input.SpecificPages,
		TotalPages:    totalPages,
		TotalCost:     totalCost,
		Files:         files,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PrintJobRepo().Create(ctx, job)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist print job", slog.Any("shopOwnerID", input.ShopOwnerID), slog.Any("error", err))

		return nil, err
	}

	// Realtime delivery is best-effort; the job is already durable.
	if pubErr := srv.publisher.PublishNewJob(ctx, job); pubErr != nil {
		srv.log(ctx).Warn("Failed to announce new print job", slog.Any("jobID", job.ID), slog.Any("error", pubErr))
	}

	srv.log(ctx).Debug("Print job submitted", slog.Any("jobID", job.ID), slog.String("token", job.TokenNumber))

	return job, nil
}

func (srv *printJobService) storeFiles(ctx context.Context, jobID uuid.UUID, inputs []usecase.SubmitFileInput) ([]entity.PrintFile, error) {
	jobKey := "jobs/" + jobID.String()

	files := make([]entity.PrintFile, 0, len(inputs))
	for _, in := range inputs {
		stored, err := srv.fileStorage.Save(ctx, jobKey, in.FileName, in.ContentType, in.Content)
		if err != nil {
			srv.log(ctx).Error("Failed to store uploaded file", slog.String("fileName", in.FileName), slog.Any("error", err))

			return nil, domainerrors.ErrFileStoreFailed.WithDetails(err.Error())
		}

		files = append(files, entity.PrintFile{
			PrintJobID:  jobID,
			FileName:    in.FileName,
			FileURL:     stored.URL,
			ContentType: stored.ContentType,
			Size:        stored.Size,
		})
	}

	return files, nil
}

// ListShopJobs returns every job of a shop, newest first.
func (srv *printJobService) ListShopJobs(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error) {
	jobs, err := srv.printJobRepo.FindByShop(ctx, shopOwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop jobs")
	}

	return jobs, nil
}

// GetJob returns one job, enforcing shop ownership.
func (srv *printJobService) GetJob(ctx context.Context, shopOwnerID, jobID uuid.UUID) (*entity.PrintJob, error) {
	job, err := srv.printJobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrPrintJobNotFound) {
			return nil, domainerrors.ErrPrintJobNotFound
		}

		return nil, errors.Wrap(err, "failed to load print job")
	}

	if job.ShopOwnerID != shopOwnerID {
		return nil, domainerrors.ErrPermissionDenied.WrapMessage("print job belongs to another shop")
	}

	return job, nil
}

// UpdateStatus applies a forward-only status transition and announces it.
func (srv *printJobService) UpdateStatus(ctx context.Context, input *usecase.UpdateJobStatusInput) (*entity.PrintJob, error) {
	srv.log(ctx).Info("Updating print job status", slog.Any("jobID", input.JobID), slog.String("status", input.Status.String()))

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown job status")
	}

	var updated *entity.PrintJob
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.PrintJobRepo()

		job, findErr := jobRepo.FindByID(ctx, input.JobID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrPrintJobNotFound) {
				return domainerrors.ErrPrintJobNotFound
			}

			return errors.Wrap(findErr, "failed to load print job for status update")
		}

		if job.ShopOwnerID != input.ShopOwnerID {
			return domainerrors.ErrPermissionDenied.WrapMessage("print job belongs to another shop")
		}

		if !job.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("cannot move from %s to %s", job.Status, input.Status),
			)
		}

		var updateErr error
		updated, updateErr = jobRepo.UpdateStatus(ctx, input.JobID, input.Status)

		return updateErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update print job status", slog.Any("jobID", input.JobID), slog.Any("error", err))

		return nil, err
	}

	change := &service.JobStatusChange{
		ID:      updated.ID.String(),
		Status:  updated.Status,
		Version: updated.Version,
	}
	if pubErr := srv.publisher.PublishStatusChange(ctx, updated.ShopOwnerID.String(), change); pubErr != nil {
		srv.log(ctx).Warn("Failed to announce status change", slog.Any("jobID", updated.ID), slog.Any("error", pubErr))
	}

	return updated, nil
}

// newTokenNumber generates the short numeric token customers quote at pickup.
func newTokenNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// crypto/rand only fails when the platform's entropy source is broken.
		return "000000"
	}

	return fmt.Sprintf("%06d", n.Int64())
}
