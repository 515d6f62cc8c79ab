package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

func day(morningIn, morningOut, afternoonIn, afternoonOut string) models.TimeEntry {
	return models.TimeEntry{
		MorningTimeIn:    morningIn,
		MorningTimeOut:   morningOut,
		AfternoonTimeIn:  afternoonIn,
		AfternoonTimeOut: afternoonOut,
	}
}

func TestSummarize(t *testing.T) {
	entries := []models.TimeEntry{
		day("08:00", "12:00", "13:00", "17:00"),
		day("08:00", "12:30", "", ""),
	}

	p := Summarize(entries, 500)

	assert.Equal(t, 2, p.EntryCount)
	assert.Equal(t, 12.5, p.CompletedHours)
	assert.Equal(t, 500.0, p.RequiredHours)
	assert.Equal(t, 487.5, p.RemainingHours)
	assert.Equal(t, 3, p.CompletionPercentage)
}

func TestSummarize_ClampsAtHundred(t *testing.T) {
	entries := make([]models.TimeEntry, 0, 60)
	for i := 0; i < 60; i++ {
		entries = append(entries, day("07:00", "12:00", "13:00", "18:00"))
	}

	p := Summarize(entries, 500)

	assert.Equal(t, 600.0, p.CompletedHours)
	assert.Equal(t, 100, p.CompletionPercentage)
	assert.Zero(t, p.RemainingHours)
}

func TestSummarize_Empty(t *testing.T) {
	p := Summarize(nil, 500)

	assert.Zero(t, p.EntryCount)
	assert.Zero(t, p.CompletedHours)
	assert.Zero(t, p.CompletionPercentage)
	assert.Equal(t, 500.0, p.RemainingHours)
}

func TestSummarize_RoundsToTwoDecimals(t *testing.T) {
	entries := []models.TimeEntry{
		day("08:00", "08:20", "", ""),
		day("08:00", "08:20", "", ""),
	}

	p := Summarize(entries, 10)

	assert.Equal(t, 0.67, p.CompletedHours)
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		completed, required float64
		want                int
	}{
		{12.5, 500, 3},
		{600, 500, 100},
		{250, 500, 50},
		{0, 500, 0},
		{10, 0, 0},
		{10, -5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompletionPercentage(tt.completed, tt.required), "%v/%v", tt.completed, tt.required)
	}
}
