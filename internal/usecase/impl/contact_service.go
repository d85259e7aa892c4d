package impl

import (
	"context"
	"log/slog"

	deliverycontext "printdesk/internal/delivery/context"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/repository"
	"printdesk/internal/usecase"

	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit persists a support request.
func (srv *contactService) Submit(ctx context.Context, input *usecase.SubmitContactInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	// Single insert, no transaction needed.
	if err := srv.contactRepo.Create(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to store contact message", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Contact message received", slog.Any("id", msg.ID))

	return msg, nil
}
