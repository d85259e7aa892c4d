package usecase

import (
	"context"

	"printdesk/internal/domain/entity"
)

// SubmitContactInput defines the data of a contact-form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase defines the interface for contact-form business operations.
type ContactUsecase interface {
	// Submit persists a support request.
	Submit(ctx context.Context, input *SubmitContactInput) (*entity.ContactMessage, error)
}
