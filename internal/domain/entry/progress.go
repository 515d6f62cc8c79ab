package entry

import (
	"math"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type Progress struct {
	EntryCount           int     `json:"entry_count"`
	CompletedHours       float64 `json:"completed_hours"`
	RequiredHours        float64 `json:"required_hours"`
	RemainingHours       float64 `json:"remaining_hours"`
	CompletionPercentage int     `json:"completion_percentage"`
}

// Summarize reduces entries into progress against requiredHours.
func Summarize(entries []models.TimeEntry, requiredHours float64) Progress {
	var total float64
	for i := range entries {
		total += HoursOf(&entries[i]).Total
	}

	completed := RoundHours(total)

	return Progress{
		EntryCount:           len(entries),
		CompletedHours:       completed,
		RequiredHours:        requiredHours,
		RemainingHours:       RoundHours(math.Max(0, requiredHours-completed)),
		CompletionPercentage: CompletionPercentage(completed, requiredHours),
	}
}

// CompletionPercentage is completed/required as a whole percentage,
// clamped to [0, 100]. A non-positive target yields 0.
func CompletionPercentage(completed, required float64) int {
	if required <= 0 {
		return 0
	}

	pct := math.Round(completed * 100 / required)
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	}
	return int(pct)
}

// RoundHours rounds to two decimal places.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
