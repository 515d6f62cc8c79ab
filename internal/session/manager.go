package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue starts a session for userID and returns its signed token.
func (m *Manager) Issue(ctx context.Context, userID string) (string, Session, error) {
	now := m.now()
	s := Session{
		ID:        m.newID(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, s); err != nil {
		return "", Session{}, fmt.Errorf("save session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        s.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, s, nil
}

// Resolve verifies token and returns the identity it carries. Any token
// problem, and a session that no longer exists, yields ErrNoSession. Other
// errors come from the store.
func (m *Manager) Resolve(ctx context.Context, token string) (Identity, error) {
	claims, err := m.parse(token)
	if err != nil {
		return Identity{}, ErrNoSession
	}

	owner, err := m.store.Lookup(ctx, claims.ID)
	if err != nil {
		return Identity{}, err
	}
	if owner != claims.Subject {
		return Identity{}, ErrNoSession
	}

	return Identity{UserID: claims.Subject, SessionID: claims.ID}, nil
}

// Revoke ends the session behind token. Unknown or invalid tokens are
// ignored.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrNoSession
	}

	return claims, nil
}
