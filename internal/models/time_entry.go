package models

import "time"

// TimeEntry is one calendar day of worked shifts owned by a single user.
// Morning and afternoon times are empty strings when not worked; evening
// times are NULL when absent.
type TimeEntry struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"type:date;not null" json:"date"`

	MorningTimeIn    string  `gorm:"size:16;not null;default:''" json:"morning_time_in"`
	MorningTimeOut   string  `gorm:"size:16;not null;default:''" json:"morning_time_out"`
	AfternoonTimeIn  string  `gorm:"size:16;not null;default:''" json:"afternoon_time_in"`
	AfternoonTimeOut string  `gorm:"size:16;not null;default:''" json:"afternoon_time_out"`
	EveningTimeIn    *string `gorm:"size:16" json:"evening_time_in"`
	EveningTimeOut   *string `gorm:"size:16" json:"evening_time_out"`

	CreatedBy string    `gorm:"size:64;not null;index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
