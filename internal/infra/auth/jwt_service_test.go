package auth

import (
	"testing"
	"time"

	"printdesk/config"
	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func shopOwnerFixture() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:    id,
		Name:  "Test Owner",
		Email: "owner@example.com",
		Role:  entity.RoleShopOwner,
		ShopProfile: &entity.ShopProfile{
			UserID:   id,
			ShopName: "Corner Copies",
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := shopOwnerFixture()

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleShopOwner, claims.Role)
	assert.Equal(t, user.ID, claims.ShopOwnerID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_AdminHasNoShopID(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	admin := &entity.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}

	token, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, claims.ShopOwnerID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(testConfig("secret_one_that_is_long_enough_for_hs256"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret_two_that_is_long_enough_for_hs256"))
	require.NoError(t, err)

	token, err := signer.GenerateToken(shopOwnerFixture())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
