package auth

import (
	"testing"

	"printdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig())

	hash, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, hasher.Check("Sup3r$ecret", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Sup3r$ecret", wantErr: false},
		{name: "too short", password: "S3c$r", wantErr: true},
		{name: "missing uppercase", password: "sup3r$ecret", wantErr: true},
		{name: "missing lowercase", password: "SUP3R$ECRET", wantErr: true},
		{name: "missing number", password: "Super$ecret", wantErr: true},
		{name: "missing special", password: "Sup3rSecret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_NoPolicyAcceptsAnything(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	assert.NoError(t, hasher.ValidatePasswordStrength("x"))
}
