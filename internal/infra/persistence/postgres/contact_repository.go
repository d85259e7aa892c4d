package postgres

import (
	"context"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new contact message.
func (repo *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	msgM := &model.ContactMessageModel{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	msg.ID = msgM.ID
	msg.CreatedAt = msgM.CreatedAt

	return nil
}
