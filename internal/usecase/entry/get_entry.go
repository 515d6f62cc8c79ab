package entry

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type GetEntry struct {
	repo domain.Repository
}

func NewGetEntry(repo domain.Repository) *GetEntry {
	return &GetEntry{repo: repo}
}

func (uc *GetEntry) Execute(
	ctx context.Context,
	ownerID string,
	id uint,
) (*models.TimeEntry, error) {
	return findOwned(ctx, uc.repo, ownerID, id)
}

// findOwned loads entry id for ownerID. A missing row and a row owned by
// someone else are indistinguishable to the caller.
func findOwned(
	ctx context.Context,
	repo domain.Repository,
	ownerID string,
	id uint,
) (*models.TimeEntry, error) {

	e, err := repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeEntryNotFound)
	}
	return err
}
