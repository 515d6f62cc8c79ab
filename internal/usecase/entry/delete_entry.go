package entry

import (
	"context"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
)

type DeleteEntry struct {
	repo domain.Repository
}

func NewDeleteEntry(repo domain.Repository) *DeleteEntry {
	return &DeleteEntry{repo: repo}
}

func (uc *DeleteEntry) Execute(
	ctx context.Context,
	ownerID string,
	id uint,
) error {

	if _, err := findOwned(ctx, uc.repo, ownerID, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return notFound(err)
	}
	return nil
}
