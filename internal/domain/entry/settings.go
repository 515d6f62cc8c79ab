package entry

import "github.com/BruksfildServices01/ojt-tracker/internal/validation"

type SettingsInput struct {
	RequiredHours *float64 `json:"required_hours" validate:"required,gt=0,lte=100000"`
}

// ValidateSettings returns the target hours carried by in.
func ValidateSettings(in SettingsInput) (float64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}
	return *in.RequiredHours, nil
}
