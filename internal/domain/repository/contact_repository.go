package repository

import (
	"context"

	"printdesk/internal/domain/entity"
)

// ContactRepository persists support-form submissions.
type ContactRepository interface {
	// Create persists a new contact message.
	Create(ctx context.Context, msg *entity.ContactMessage) error
}
