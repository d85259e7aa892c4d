// Package session is the client-side source of truth for "who is logged in".
// It decodes access tokens without server round-trips and caches the derived
// identity in a local sqlite database so the dashboard survives restarts.
package session

import (
	"database/sql"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite" // sqlite driver
)

const (
	keyAuthToken   = "authToken"
	keySessionID   = "sessionId"
	keyUserName    = "userName"
	keyRole        = "role"
	keyShopOwnerID = "shopOwnerId"
)

// Session is the identity derived from a decoded access token.
type Session struct {
	ID          string
	Name        string
	Email       string
	Role        entity.Role
	ShopOwnerID string
	Token       string
	ExpiresAt   time.Time
}

// Store holds the current session in memory and mirrors it to sqlite.
// All methods are meant to be called from the UI goroutine; the store does
// no locking of its own.
type Store struct {
	db      *sql.DB
	current *Session
	now     func() time.Time
}

// Open creates (or reuses) the session database at path and hydrates the
// previous session if its token has not expired. An expired or unreadable
// token clears the cache and starts unauthenticated.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session database")
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create session schema")
	}

	s := &Store{db: db, now: time.Now}
	if err := s.hydrate(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return errors.WithStack(s.db.Close())
}

// Login decodes the token client-side and persists the derived identity.
// The signature is NOT verified here; the server remains the enforcement
// point and rejects tampered tokens on every call.
func (s *Store) Login(token string) (*Session, error) {
	sess, err := decodeToken(token)
	if err != nil {
		return nil, err
	}

	if err := s.persist(sess); err != nil {
		return nil, err
	}

	s.current = sess

	return sess, nil
}

// Logout clears the persisted state and resets to unauthenticated. It is
// optimistic: local state clears even if the server was never told.
func (s *Store) Logout() error {
	s.current = nil

	return s.clear()
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	return s.current
}

// IsAuthenticated reports whether a session is active. Expiry is only
// checked at hydration time, matching the load-time trust model.
func (s *Store) IsAuthenticated() bool {
	return s.current != nil
}

func (s *Store) hydrate() error {
	token, err := s.get(keyAuthToken)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	sess, err := decodeToken(token)
	if err != nil || sess.ExpiresAt.Before(s.now()) {
		// Stale or unreadable cache. Wipe it and start unauthenticated.
		return s.clear()
	}

	s.current = sess

	return nil
}

func decodeToken(token string) (*Session, error) {
	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode access token")
	}

	sess := &Session{
		ID:    claims.UserID.String(),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
		Token: token,
	}
	if claims.ShopOwnerID != uuid.Nil {
		sess.ShopOwnerID = claims.ShopOwnerID.String()
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	return sess, nil
}

func (s *Store) persist(sess *Session) error {
	pairs := map[string]string{
		keyAuthToken:   sess.Token,
		keySessionID:   sess.ID,
		keyUserName:    sess.Name,
		keyRole:        string(sess.Role),
		keyShopOwnerID: sess.ShopOwnerID,
	}

	for key, value := range pairs {
		if _, err := s.db.Exec(
			`INSERT INTO session_store (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return errors.Wrapf(err, "failed to persist session key %s", key)
		}
	}

	return nil
}

func (s *Store) clear() error {
	if _, err := s.db.Exec(`DELETE FROM session_store`); err != nil {
		return errors.Wrap(err, "failed to clear session store")
	}

	return nil
}

func (s *Store) get(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read session key %s", key)
	}

	return value, nil
}
