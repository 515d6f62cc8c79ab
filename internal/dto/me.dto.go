package dto

import "github.com/BruksfildServices01/ojt-tracker/internal/models"

type MeDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func NewMeDTO(u *models.User) MeDTO {
	return MeDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

type SettingsDTO struct {
	RequiredHours float64 `json:"required_hours"`
}
