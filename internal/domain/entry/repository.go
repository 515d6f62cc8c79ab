package entry

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

// ErrNotFound is returned when no row matches both the id and the owner,
// and when an owner has never stored a target.
var ErrNotFound = errors.New("entry: not found")

// Repository is the owner-scoped store of time entries and of the
// per-owner target hours. Every entry operation filters on id and owner
// together.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.TimeEntry, error)

	GetByID(ctx context.Context, id uint, ownerID string) (*models.TimeEntry, error)

	Create(ctx context.Context, e *models.TimeEntry) error

	// Update replaces the date and the six time fields. e.CreatedBy is
	// ignored.
	Update(ctx context.Context, id uint, ownerID string, e Entry) error

	Delete(ctx context.Context, id uint, ownerID string) error

	RequiredHours(ctx context.Context, ownerID string) (float64, error)

	SetRequiredHours(ctx context.Context, ownerID string, hours float64) error
}
