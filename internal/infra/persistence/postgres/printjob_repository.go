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

// printJobRepository implements the domain.PrintJobRepository interface using GORM.
type printJobRepository struct {
	db *gorm.DB
}

// NewPrintJobRepository is the constructor for printJobRepository.
func NewPrintJobRepository(db *gorm.DB) repository.PrintJobRepository {
	return &printJobRepository{db: db}
}

// FindByID retrieves a single job with its files.
func (repo *printJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PrintJob, error) {
	var jobM model.PrintJobModel
	err := repo.db.WithContext(ctx).
		Preload("Files").
		Where("id = ?", id).
		First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrintJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find print job by id")
	}

	return toPrintJobDomain(&jobM), nil
}

// FindByShop retrieves every job belonging to a shop, newest first.
func (repo *printJobRepository) FindByShop(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error) {
	var models []*model.PrintJobModel
	err := repo.db.WithContext(ctx).
		Preload("Files").
		Where("shop_owner_id = ?", shopOwnerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list print jobs for shop")
	}

	jobs := make([]*entity.PrintJob, 0, len(models))
	for _, m := range models {
		jobs = append(jobs, toPrintJobDomain(m))
	}

	return jobs, nil
}

// Create persists a new job together with its files.
func (repo *printJobRepository) Create(ctx context.Context, job *entity.PrintJob) error {
	jobM := fromPrintJobDomain(job)
	jobM.Version = 1

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPrintJobNotFound.WrapMessage("shop does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create print job")
	}

	// Copy back the generated IDs, version and timestamps.
	job.ID = jobM.ID
	job.Version = jobM.Version
	job.CreatedAt = jobM.CreatedAt
	for i := range job.Files {
		if i < len(jobM.Files) {
			job.Files[i].ID = jobM.Files[i].ID
			job.Files[i].PrintJobID = jobM.Files[i].PrintJobID
		}
	}

	return nil
}

// UpdateStatus persists a status transition and bumps the job's version in a
// single UPDATE so concurrent transitions cannot produce duplicate versions.
func (repo *printJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PrintJobModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  status.String(),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update print job status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPrintJobNotFound
	}

	return repo.FindByID(ctx, id)
}

// CountByStatus returns the number of jobs per status across all shops.
func (repo *printJobRepository) CountByStatus(ctx context.Context) (map[entity.JobStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := repo.db.WithContext(ctx).
		Model(&model.PrintJobModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count print jobs by status")
	}

	counts := make(map[entity.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.JobStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toPrintJobDomain(data *model.PrintJobModel) *entity.PrintJob {
	if data == nil {
		return nil
	}

	files := make([]entity.PrintFile, 0, len(data.Files))
	for _, f := range data.Files {
		files = append(files, entity.PrintFile{
			ID:          f.ID,
			PrintJobID:  f.PrintJobID,
			FileName:    f.FileName,
			FileURL:     f.FileURL,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
	}

	return &entity.PrintJob{
		ID:            data.ID,
		ShopOwnerID:   data.ShopOwnerID,
		TokenNumber:   data.TokenNumber,
		Status:        entity.JobStatus(data.Status),
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		CustomerPhone: data.CustomerPhone,
		NoofCopies:    data.NoofCopies,
		PrintType:     entity.PrintType(data.PrintType),
		PaperType:     data.PaperType,
		PrintSide:     entity.PrintSide(data.PrintSide),
		SpecificPages: data.SpecificPages,
		TotalPages:    data.TotalPages,
		TotalCost:     data.TotalCost,
		Version:       data.Version,
		CreatedAt:     data.CreatedAt,
		Files:         files,
	}
}

func fromPrintJobDomain(data *entity.PrintJob) *model.PrintJobModel {
	if data == nil {
		return nil
	}

	files := make([]*model.PrintFileModel, 0, len(data.Files))
	for _, f := range data.Files {
		files = append(files, &model.PrintFileModel{
			ID:          f.ID,
			PrintJobID:  f.PrintJobID,
			FileName:    f.FileName,
			FileURL:     f.FileURL,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
	}

	return &model.PrintJobModel{
		ID:            data.ID,
		ShopOwnerID:   data.ShopOwnerID,
		TokenNumber:   data.TokenNumber,
		Status:        data.Status.String(),
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		CustomerPhone: data.CustomerPhone,
		NoofCopies:    data.NoofCopies,
		PrintType:     string(data.PrintType),
		PaperType:     data.PaperType,
		PrintSide:     string(data.PrintSide),
		SpecificPages: data.SpecificPages,
		TotalPages:    data.TotalPages,
		TotalCost:     data.TotalCost,
		Version:       data.Version,
		Files:         files,
	}
}
