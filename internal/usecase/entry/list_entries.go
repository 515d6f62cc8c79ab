package entry

import (
	"context"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

// Execute returns the caller's entries. An empty owner yields an empty
// list rather than an error.
func (uc *ListEntries) Execute(
	ctx context.Context,
	ownerID string,
) ([]models.TimeEntry, error) {

	if ownerID == "" {
		return []models.TimeEntry{}, nil
	}
	return uc.repo.ListByOwner(ctx, ownerID)
}
