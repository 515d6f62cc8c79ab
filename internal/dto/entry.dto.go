package dto

import (
	"time"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type EntryDTO struct {
	ID               uint              `json:"id"`
	Date             string            `json:"date"`
	MorningTimeIn    string            `json:"morning_time_in"`
	MorningTimeOut   string            `json:"morning_time_out"`
	AfternoonTimeIn  string            `json:"afternoon_time_in"`
	AfternoonTimeOut string            `json:"afternoon_time_out"`
	EveningTimeIn    *string           `json:"evening_time_in"`
	EveningTimeOut   *string           `json:"evening_time_out"`
	CreatedBy        string            `json:"created_by"`
	CreatedAt        time.Time         `json:"created_at"`
	Hours            domain.EntryHours `json:"hours"`
}

func NewEntryDTO(e *models.TimeEntry) EntryDTO {
	h := domain.HoursOf(e)
	h.Morning = domain.RoundHours(h.Morning)
	h.Afternoon = domain.RoundHours(h.Afternoon)
	h.Evening = domain.RoundHours(h.Evening)
	h.Total = domain.RoundHours(h.Total)

	return EntryDTO{
		ID:               e.ID,
		Date:             e.Date.Format(domain.DateLayout),
		MorningTimeIn:    e.MorningTimeIn,
		MorningTimeOut:   e.MorningTimeOut,
		AfternoonTimeIn:  e.AfternoonTimeIn,
		AfternoonTimeOut: e.AfternoonTimeOut,
		EveningTimeIn:    e.EveningTimeIn,
		EveningTimeOut:   e.EveningTimeOut,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        e.CreatedAt,
		Hours:            h,
	}
}

func NewEntryListDTO(entries []models.TimeEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, NewEntryDTO(&entries[i]))
	}
	return out
}
