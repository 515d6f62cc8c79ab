package models

import "time"

type User struct {
	ID            string `gorm:"primaryKey;size:64" json:"id"`
	GoogleSubject string `gorm:"size:255;uniqueIndex;not null" json:"-"`

	Email     string `gorm:"size:255;not null" json:"email"`
	Name      string `gorm:"size:255" json:"name"`
	AvatarURL string `gorm:"size:512" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
