package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

var ErrNotFound = errors.New("user: not found")

// Profile is what the identity provider tells us about the caller.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type Repository interface {
	// UpsertByGoogleSubject returns the user linked to p.Subject, creating
	// it when absent and refreshing email, name and avatar otherwise.
	UpsertByGoogleSubject(ctx context.Context, p Profile) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)
}
