package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	mockRepo "printdesk/internal/mocks/repository"
	mockSvc "printdesk/internal/mocks/service"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return userServiceFixtures{
		service:       service,
		txManager:     txManager,
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		qrcodeService: qrcodeService,
	}
}

func TestUserService_RegisterShopOwner_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterShopOwnerInput{
		Name:        "Test Owner",
		Email:       "owner@example.com",
		Password:    "Password123!",
		PhoneNumber: "5551234567",
		ShopName:    "Corner Print Shop",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					user.ShopProfile.UserID = user.ID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterShopOwner(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleShopOwner, output.User.Role)
	require.NotNil(t, output.User.ShopProfile)
	assert.Equal(t, input.ShopName, output.User.ShopProfile.ShopName)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestUserService_RegisterShopOwner_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterShopOwnerInput{
		Name:     "Test Owner",
		Email:    "taken@example.com",
		Password: "Password123!",
		ShopName: "Corner Print Shop",
	}

	existing := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.RegisterShopOwner(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterShopOwner_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterShopOwnerInput{
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: "weak",
		ShopName: "Corner Print Shop",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password must contain at least 8 characters"))

	output, err := fx.service.RegisterShopOwner(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "8 characters")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        input.Email,
		Role:         entity.RoleShopOwner,
		PasswordHash: "hashed_password",
		ShopProfile:  &entity.ShopProfile{UserID: userID, ShopName: "Corner Print Shop"},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user).Return("access_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// Not-found and wrong-password collapse into the same error to avoid
	// leaking which emails are registered.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetUser(ctx, id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateUserInput{
		ID:       userID,
		Name:     "New Name",
		ShopName: "New Shop Name",
	}

	existing := &entity.User{
		ID:          userID,
		Name:        "Old Name",
		PhoneNumber: "5551234567",
		Role:        entity.RoleShopOwner,
		ShopProfile: &entity.ShopProfile{UserID: userID, ShopName: "Old Shop Name"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "New Shop Name", updated.ShopProfile.ShopName)
	// Untouched fields survive the update.
	assert.Equal(t, "5551234567", updated.PhoneNumber)
}

func TestUserService_GenerateShopQR_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	shopOwnerID := uuid.New()
	user := &entity.User{
		ID:          shopOwnerID,
		Role:        entity.RoleShopOwner,
		ShopProfile: &entity.ShopProfile{UserID: shopOwnerID, ShopName: "Corner Print Shop"},
	}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.userRepo.EXPECT().FindByID(ctx, shopOwnerID).Return(user, nil)
	fx.qrcodeService.EXPECT().GenerateUploadQR(shopOwnerID).Return(png, nil)

	got, err := fx.service.GenerateShopQR(ctx, shopOwnerID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestUserService_GenerateShopQR_NotShopOwner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.User{ID: adminID, Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(admin, nil)

	got, err := fx.service.GenerateShopQR(ctx, adminID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}
