// Package session issues and resolves the signed tokens that tie a request
// to an authenticated user. A token is only honoured while its session is
// still present in the Store, which is what makes sign-out effective.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNoSession = errors.New("session: no valid session")

type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Identity is the resolved caller of a request.
type Identity struct {
	UserID    string
	SessionID string
}

type Store interface {
	Save(ctx context.Context, s Session) error

	// Lookup returns the owner of session id, or ErrNoSession.
	Lookup(ctx context.Context, id string) (string, error)

	Delete(ctx context.Context, id string) error
}
