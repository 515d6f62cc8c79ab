package entry

import (
	"context"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
)

type UpdateEntry struct {
	repo domain.Repository
}

func NewUpdateEntry(repo domain.Repository) *UpdateEntry {
	return &UpdateEntry{repo: repo}
}

// Execute replaces the date and shift times of entry id. The owner never
// changes.
func (uc *UpdateEntry) Execute(
	ctx context.Context,
	ownerID string,
	id uint,
	in domain.Input,
) error {

	e, err := domain.Validate(ownerID, in)
	if err != nil {
		return err
	}

	if _, err := findOwned(ctx, uc.repo, ownerID, id); err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, id, ownerID, e); err != nil {
		return notFound(err)
	}
	return nil
}
