package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printdesk/internal/domain/entity"
	mockRepo "printdesk/internal/mocks/repository"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockContactRepository) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewContactService(ContactServiceParams{
		ContactRepo: contactRepo,
		Logger:      logger,
	})

	return service, contactRepo
}

func TestContactService_Submit_Success(t *testing.T) {
	service, contactRepo := createTestContactService(t)

	ctx := context.Background()
	input := &usecase.SubmitContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Printer jam",
		Message: "My job never finished.",
	}

	contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(ctx context.Context, msg *entity.ContactMessage) {
			msg.ID = uuid.New()
		}).
		Return(nil)

	msg, err := service.Submit(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, input.Email, msg.Email)
	assert.Equal(t, input.Message, msg.Message)
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	service, contactRepo := createTestContactService(t)

	ctx := context.Background()
	input := &usecase.SubmitContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Printer jam",
		Message: "My job never finished.",
	}

	contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Return(errors.New("connection refused"))

	msg, err := service.Submit(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, msg)
}
