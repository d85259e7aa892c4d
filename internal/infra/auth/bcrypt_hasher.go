package auth

import (
	"fmt"
	"strings"
	"unicode"

	"printdesk/config"
	"printdesk/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using the bcrypt algorithm.
type bcryptHasher struct {
	cost             int
	passwordStrength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:             cost,
		passwordStrength: cfg.PasswordStrength,
	}
}

// Hash generates a bcrypt hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a stored bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength verifies the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.passwordStrength
	if policy == nil {
		return nil
	}

	var failures []string

	if policy.MinLength > 0 && len(password) < policy.MinLength {
		failures = append(failures, fmt.Sprintf("at least %d characters", policy.MinLength))
	}
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		failures = append(failures, fmt.Sprintf("at most %d characters", policy.MaxLength))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		failures = append(failures, "an uppercase letter")
	}
	if policy.RequireLowercase && !hasLower {
		failures = append(failures, "a lowercase letter")
	}
	if policy.RequireNumbers && !hasNumber {
		failures = append(failures, "a number")
	}
	if policy.RequireSpecial && !hasSpecial {
		failures = append(failures, "a special character")
	}

	if len(failures) > 0 {
		return fmt.Errorf("password must contain %s", strings.Join(failures, ", "))
	}

	return nil
}
