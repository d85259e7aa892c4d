package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/domain/service"
	mockRepo "printdesk/internal/mocks/repository"
	mockSvc "printdesk/internal/mocks/service"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// printJobServiceFixtures holds all test dependencies for print job service tests.
type printJobServiceFixtures struct {
	service      usecase.PrintJobUsecase
	txManager    *mockRepo.MockTransactionManager
	printJobRepo *mockRepo.MockPrintJobRepository
	pricingRepo  *mockRepo.MockPricingRepository
	userRepo     *mockRepo.MockUserRepository
	fileStorage  *mockSvc.MockFileStorage
	publisher    *mockSvc.MockJobEventPublisher
}

func createTestPrintJobService(t *testing.T) printJobServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	printJobRepo := mockRepo.NewMockPrintJobRepository(t)
	pricingRepo := mockRepo.NewMockPricingRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	publisher := mockSvc.NewMockJobEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPrintJobService(PrintJobServiceParams{
		TxManager:    txManager,
		PrintJobRepo: printJobRepo,
		PricingRepo:  pricingRepo,
		UserRepo:     userRepo,
		FileStorage:  fileStorage,
		Publisher:    publisher,
		Logger:       logger,
	})

	return printJobServiceFixtures{
		service:      service,
		txManager:    txManager,
		printJobRepo: printJobRepo,
		pricingRepo:  pricingRepo,
		userRepo:     userRepo,
		fileStorage:  fileStorage,
		publisher:    publisher,
	}
}

func shopFixture(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:   id,
		Role: entity.RoleShopOwner,
		ShopProfile: &entity.ShopProfile{
			UserID:   id,
			ShopName: "Corner Print Shop",
		},
	}
}

func submitInputFixture(shopOwnerID uuid.UUID) *usecase.SubmitPrintJobInput {
	return &usecase.SubmitPrintJobInput{
		ShopOwnerID:  shopOwnerID,
		CustomerName: "Alice",
		NoofCopies:   2,
		PrintType:    entity.PrintTypeBlackWhite,
		PaperType:    "A4",
		PrintSide:    entity.PrintSideSingle,
		TotalPages:   10,
		Files: []usecase.SubmitFileInput{
			{FileName: "report.pdf", ContentType: "application/pdf", Size: 128, Content: strings.NewReader("pdf-bytes")},
		},
	}
}

func TestPrintJobService_Submit_Success(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)

	pricing := &entity.PricingConfig{
		ID:          uuid.New(),
		ShopOwnerID: shopOwnerID,
		PaperType:   "A4",
		PrintType:   entity.PrintTypeBlackWhite,
		SingleSided: 1.5,
		DoubleSided: 2.5,
	}

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(shopFixture(shopOwnerID), nil)
	fx.pricingRepo.EXPECT().
		FindForJob(ctx, shopOwnerID, input.PaperType, input.PrintType).
		Return(pricing, nil)

	fx.fileStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "report.pdf", "application/pdf", mock.Anything).
		Return(&service.StoredFile{
			Key:         "jobs/some-job/report.pdf",
			URL:         "https://files.example.com/jobs/some-job/report.pdf",
			ContentType: "application/pdf",
			Size:        128,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockPrintJobRepository(t)

			mockFactory.EXPECT().PrintJobRepo().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PrintJob")).
				Run(func(ctx context.Context, job *entity.PrintJob) {
					job.Version = 1
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().PublishNewJob(ctx, mock.AnythingOfType("*entity.PrintJob")).Return(nil)

	job, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, shopOwnerID, job.ShopOwnerID)
	assert.Equal(t, entity.JobStatusPending, job.Status)
	// 1.5 per page x 10 pages x 2 copies.
	assert.InDelta(t, 30.0, job.TotalCost, 0.0001)
	assert.Len(t, job.TokenNumber, 6)
	require.Len(t, job.Files, 1)
	assert.Equal(t, "https://files.example.com/jobs/some-job/report.pdf", job.Files[0].FileURL)
	assert.Equal(t, job.ID, job.Files[0].PrintJobID)
}

func TestPrintJobService_Submit_DoubleSidedPricing(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)
	input.PrintSide = entity.PrintSideDouble
	input.NoofCopies = 3
	input.TotalPages = 4

	pricing := &entity.PricingConfig{
		ShopOwnerID: shopOwnerID,
		PaperType:   "A4",
		PrintType:   entity.PrintTypeBlackWhite,
		SingleSided: 1.5,
		DoubleSided: 2.5,
	}

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(shopFixture(shopOwnerID), nil)
	fx.pricingRepo.EXPECT().
		FindForJob(ctx, shopOwnerID, input.PaperType, input.PrintType).
		Return(pricing, nil)
	fx.fileStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "report.pdf", "application/pdf", mock.Anything).
		Return(&service.StoredFile{URL: "https://files.example.com/report.pdf"}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fx.publisher.EXPECT().PublishNewJob(ctx, mock.AnythingOfType("*entity.PrintJob")).Return(nil)

	job, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	// 2.5 per page x 4 pages x 3 copies.
	assert.InDelta(t, 30.0, job.TotalCost, 0.0001)
}

func TestPrintJobService_Submit_PagesDefaultToFileCount(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)
	input.TotalPages = 0
	input.NoofCopies = 1
	input.Files = append(input.Files, usecase.SubmitFileInput{
		FileName:    "notes.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Content:     strings.NewReader("docx-bytes"),
	})

	pricing := &entity.PricingConfig{
		ShopOwnerID: shopOwnerID,
		PaperType:   "A4",
		PrintType:   entity.PrintTypeBlackWhite,
		SingleSided: 2.0,
	}

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(shopFixture(shopOwnerID), nil)
	fx.pricingRepo.EXPECT().
		FindForJob(ctx, shopOwnerID, input.PaperType, input.PrintType).
		Return(pricing, nil)
	fx.fileStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(&service.StoredFile{URL: "https://files.example.com/f"}, nil).
		Times(2)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fx.publisher.EXPECT().PublishNewJob(ctx, mock.AnythingOfType("*entity.PrintJob")).Return(nil)

	job, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 2, job.TotalPages)
	assert.InDelta(t, 4.0, job.TotalCost, 0.0001)
}

func TestPrintJobService_Submit_NoFiles(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	input := submitInputFixture(uuid.New())
	input.Files = nil

	job, err := fx.service.Submit(ctx, input)

	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrPrintJobNoFiles))
}

func TestPrintJobService_Submit_PricingNotConfigured(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(shopFixture(shopOwnerID), nil)
	fx.pricingRepo.EXPECT().
		FindForJob(ctx, shopOwnerID, input.PaperType, input.PrintType).
		Return(nil, repository.ErrPricingNotFound)

	job, err := fx.service.Submit(ctx, input)

	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrPricingNotConfigured))
}

func TestPrintJobService_Submit_ShopNotFound(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(nil, repository.ErrUserNotFound)

	job, err := fx.service.Submit(ctx, input)

	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPrintJobService_Submit_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	input := submitInputFixture(shopOwnerID)

	pricing := &entity.PricingConfig{
		ShopOwnerID: shopOwnerID,
		PaperType:   "A4",
		PrintType:   entity.PrintTypeBlackWhite,
		SingleSided: 1.0,
	}

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(shopFixture(shopOwnerID), nil)
	fx.pricingRepo.EXPECT().
		FindForJob(ctx, shopOwnerID, input.PaperType, input.PrintType).
		Return(pricing, nil)
	fx.fileStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "report.pdf", "application/pdf", mock.Anything).
		Return(&service.StoredFile{URL: "https://files.example.com/report.pdf"}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNewJob(ctx, mock.AnythingOfType("*entity.PrintJob")).
		Return(errors.New("broker unavailable"))

	job, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestPrintJobService_GetJob_WrongShop(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	job := &entity.PrintJob{ID: jobID, ShopOwnerID: uuid.New()}

	fx.printJobRepo.EXPECT().FindByID(ctx, jobID).Return(job, nil)

	got, err := fx.service.GetJob(ctx, uuid.New(), jobID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestPrintJobService_UpdateStatus_Success(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	jobID := uuid.New()
	input := &usecase.UpdateJobStatusInput{
		JobID:       jobID,
		ShopOwnerID: shopOwnerID,
		Status:      entity.JobStatusProcessing,
	}

	current := &entity.PrintJob{
		ID:          jobID,
		ShopOwnerID: shopOwnerID,
		Status:      entity.JobStatusPending,
		Version:     1,
	}
	updated := &entity.PrintJob{
		ID:          jobID,
		ShopOwnerID: shopOwnerID,
		Status:      entity.JobStatusProcessing,
		Version:     2,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockPrintJobRepository(t)

			mockFactory.EXPECT().PrintJobRepo().Return(mockJobRepo)

			mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(current, nil)
			mockJobRepo.EXPECT().
				UpdateStatus(ctx, jobID, entity.JobStatusProcessing).
				Return(updated, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishStatusChange(ctx, shopOwnerID.String(), mock.AnythingOfType("*service.JobStatusChange")).
		Run(func(ctx context.Context, shopOwnerID string, change *service.JobStatusChange) {
			assert.Equal(t, jobID.String(), change.ID)
			assert.Equal(t, entity.JobStatusProcessing, change.Status)
			assert.Equal(t, int64(2), change.Version)
		}).
		Return(nil)

	got, err := fx.service.UpdateStatus(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusProcessing, got.Status)
	assert.Equal(t, int64(2), got.Version)
}

func TestPrintJobService_UpdateStatus_BackwardTransition(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	jobID := uuid.New()
	input := &usecase.UpdateJobStatusInput{
		JobID:       jobID,
		ShopOwnerID: shopOwnerID,
		Status:      entity.JobStatusPending,
	}

	current := &entity.PrintJob{
		ID:          jobID,
		ShopOwnerID: shopOwnerID,
		Status:      entity.JobStatusCompleted,
		Version:     3,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockPrintJobRepository(t)

			mockFactory.EXPECT().PrintJobRepo().Return(mockJobRepo)
			mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(current, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidStatusTransition.WithDetails("cannot move from COMPLETED to PENDING"))

	got, err := fx.service.UpdateStatus(ctx, input)

	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
}

func TestPrintJobService_UpdateStatus_WrongShop(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	input := &usecase.UpdateJobStatusInput{
		JobID:       jobID,
		ShopOwnerID: uuid.New(),
		Status:      entity.JobStatusProcessing,
	}

	current := &entity.PrintJob{
		ID:          jobID,
		ShopOwnerID: uuid.New(),
		Status:      entity.JobStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockPrintJobRepository(t)

			mockFactory.EXPECT().PrintJobRepo().Return(mockJobRepo)
			mockJobRepo.EXPECT().FindByID(ctx, jobID).Return(current, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPermissionDenied.WrapMessage("print job belongs to another shop"))

	got, err := fx.service.UpdateStatus(ctx, input)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestPrintJobService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	input := &usecase.UpdateJobStatusInput{
		JobID:       uuid.New(),
		ShopOwnerID: uuid.New(),
		Status:      entity.JobStatus("CANCELLED"),
	}

	got, err := fx.service.UpdateStatus(ctx, input)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPrintJobService_ListShopJobs(t *testing.T) {
	fx := createTestPrintJobService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	jobs := []*entity.PrintJob{
		{ID: uuid.New(), ShopOwnerID: shopOwnerID, Status: entity.JobStatusProcessing},
		{ID: uuid.New(), ShopOwnerID: shopOwnerID, Status: entity.JobStatusPending},
	}

	fx.printJobRepo.EXPECT().FindByShop(ctx, shopOwnerID).Return(jobs, nil)

	got, err := fx.service.ListShopJobs(ctx, shopOwnerID)

	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}
