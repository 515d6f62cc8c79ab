package entry

import (
	"context"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
)

type GetSettings struct {
	repo         domain.Repository
	defaultHours float64
}

func NewGetSettings(repo domain.Repository, defaultHours float64) *GetSettings {
	return &GetSettings{repo: repo, defaultHours: defaultHours}
}

// Execute returns the caller's target hours.
func (uc *GetSettings) Execute(ctx context.Context, ownerID string) (float64, error) {
	return requiredHours(ctx, uc.repo, ownerID, uc.defaultHours)
}

type UpdateSettings struct {
	repo domain.Repository
}

func NewUpdateSettings(repo domain.Repository) *UpdateSettings {
	return &UpdateSettings{repo: repo}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	ownerID string,
	in domain.SettingsInput,
) error {

	hours, err := domain.ValidateSettings(in)
	if err != nil {
		return err
	}
	return uc.repo.SetRequiredHours(ctx, ownerID, hours)
}
