package models

import "time"

// UserSettings holds per-user configuration, currently only the target
// number of hours the user must complete.
type UserSettings struct {
	UserID        string  `gorm:"primaryKey;size:64" json:"-"`
	RequiredHours float64 `gorm:"not null" json:"required_hours"`

	UpdatedAt time.Time `json:"updated_at"`
}
