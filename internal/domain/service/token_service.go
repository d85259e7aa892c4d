// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"printdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a printdesk access token.
// The wire names mirror what the dashboard and SDK decode client-side.
type Claims struct {
	UserID      uuid.UUID   `json:"userId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        entity.Role `json:"role"`
	ShopOwnerID uuid.UUID   `json:"shopOwnerId,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
