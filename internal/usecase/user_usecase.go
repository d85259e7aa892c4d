// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterShopOwnerInput defines the data required to register a new shop owner.
type RegisterShopOwnerInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	ShopName    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput defines the profile fields a user may change. Zero-value
// fields are left untouched.
type UpdateUserInput struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	ShopName    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterShopOwner(ctx context.Context, input *RegisterShopOwnerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser returns one user's profile.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser changes a user's profile fields.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)

	// GenerateShopQR renders the upload-page QR code for an existing shop.
	GenerateShopQR(ctx context.Context, shopOwnerID uuid.UUID) ([]byte, error)
}
