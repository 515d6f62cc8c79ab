package entry

import (
	"context"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type CreateEntry struct {
	repo domain.Repository
}

func NewCreateEntry(repo domain.Repository) *CreateEntry {
	return &CreateEntry{repo: repo}
}

// Execute validates in and stores it as a new entry owned by ownerID.
// Nothing is written when validation fails.
func (uc *CreateEntry) Execute(
	ctx context.Context,
	ownerID string,
	in domain.Input,
) (*models.TimeEntry, error) {

	e, err := domain.Validate(ownerID, in)
	if err != nil {
		return nil, err
	}

	m := e.NewModel()
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
