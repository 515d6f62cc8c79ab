package entry

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
)

type GetProgress struct {
	repo         domain.Repository
	defaultHours float64
}

func NewGetProgress(repo domain.Repository, defaultHours float64) *GetProgress {
	return &GetProgress{repo: repo, defaultHours: defaultHours}
}

func (uc *GetProgress) Execute(
	ctx context.Context,
	ownerID string,
) (domain.Progress, error) {

	entries, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.Progress{}, err
	}

	required, err := requiredHours(ctx, uc.repo, ownerID, uc.defaultHours)
	if err != nil {
		return domain.Progress{}, err
	}

	return domain.Summarize(entries, required), nil
}

// requiredHours returns the owner's stored target, or def when none was
// ever set.
func requiredHours(
	ctx context.Context,
	repo domain.Repository,
	ownerID string,
	def float64,
) (float64, error) {

	h, err := repo.RequiredHours(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return def, nil
	}
	return h, err
}
