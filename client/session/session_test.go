package session

import (
	"path/filepath"
	"testing"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, name string, role entity.Role, expiresAt time.Time) string {
	t.Helper()

	claims := &service.Claims{
		UserID:      uuid.New(),
		Name:        name,
		Email:       "owner@example.com",
		Role:        role,
		ShopOwnerID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestStore_LoginThenAuthenticated(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	token := signedToken(t, "Priya", entity.RoleShopOwner, time.Now().Add(time.Hour))

	sess, err := store.Login(token)
	require.NoError(t, err)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "Priya", sess.Name)
	assert.Equal(t, "owner@example.com", sess.Email)
	assert.Equal(t, entity.RoleShopOwner, sess.Role)
	assert.NotEmpty(t, sess.ShopOwnerID)
}

func TestStore_HydratesAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := Open(path)
	require.NoError(t, err)

	token := signedToken(t, "Priya", entity.RoleShopOwner, time.Now().Add(time.Hour))
	_, err = first.Login(token)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	require.True(t, second.IsAuthenticated())
	assert.Equal(t, "Priya", second.Current().Name)
	assert.Equal(t, token, second.Current().Token)
}

func TestStore_ExpiredTokenClearsStoreOnHydration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := Open(path)
	require.NoError(t, err)

	// Expiry is only checked at hydration, so logging in with an already
	// expired token succeeds and persists it.
	token := signedToken(t, "Priya", entity.RoleShopOwner, time.Now().Add(-time.Minute))
	_, err = first.Login(token)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.False(t, second.IsAuthenticated())

	stored, err := second.get(keyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestStore_LoginRejectsMalformedToken(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Login("not-a-jwt")
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	token := signedToken(t, "Priya", entity.RoleShopOwner, time.Now().Add(time.Hour))
	_, err = store.Login(token)
	require.NoError(t, err)

	require.NoError(t, store.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())

	stored, err := store.get(keyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
