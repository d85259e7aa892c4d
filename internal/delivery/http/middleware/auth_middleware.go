// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"strings"

	"printdesk/internal/delivery/http/response"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID      = "userID"
	KeyUserRole    = "userRole"
	KeyShopOwnerID = "shopOwnerID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserRole, claims.Role)
		c.Set(KeyShopOwnerID, claims.ShopOwnerID)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyUserRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "PERMISSION_DENIED", "Requires '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
