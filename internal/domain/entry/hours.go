package entry

import (
	"math"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

// Shift is a time-in/time-out pair on a 24-hour clock ("HH:MM").
// An empty string on either side means the shift was not worked, so the
// zero Shift is the single representation of an absent shift.
type Shift struct {
	In  string
	Out string
}

func (s Shift) IsZero() bool {
	return s.In == "" && s.Out == ""
}

func (s Shift) Hours() float64 {
	return Hours(s.In, s.Out)
}

// Hours returns the fractional hours between timeIn and timeOut.
//
// Either side empty yields 0. A time-out earlier than the time-in also
// yields 0: shifts never wrap past midnight. Strings that are not two
// integers separated by ':' yield 0. Hour and minute ranges are not
// checked, so "25:99" is read as 25*60+99 minutes.
func Hours(timeIn, timeOut string) float64 {
	if timeIn == "" || timeOut == "" {
		return 0
	}

	inMinutes, ok := clockMinutes(timeIn)
	if !ok {
		return 0
	}
	outMinutes, ok := clockMinutes(timeOut)
	if !ok {
		return 0
	}

	return math.Max(0, float64(outMinutes-inMinutes)/60)
}

func clockMinutes(hm string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(hm), ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return hour*60 + minute, true
}

// EntryHours is the per-shift breakdown of a single entry.
type EntryHours struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Total     float64 `json:"total"`
}

func HoursOf(e *models.TimeEntry) EntryHours {
	morning, afternoon, evening := ShiftsOf(e)

	h := EntryHours{
		Morning:   morning.Hours(),
		Afternoon: afternoon.Hours(),
		Evening:   evening.Hours(),
	}
	h.Total = h.Morning + h.Afternoon + h.Evening
	return h
}

// ShiftsOf reads the three shifts of a stored entry. A NULL evening time
// becomes the empty string.
func ShiftsOf(e *models.TimeEntry) (morning, afternoon, evening Shift) {
	morning = Shift{In: e.MorningTimeIn, Out: e.MorningTimeOut}
	afternoon = Shift{In: e.AfternoonTimeIn, Out: e.AfternoonTimeOut}
	evening = Shift{In: deref(e.EveningTimeIn), Out: deref(e.EveningTimeOut)}
	return morning, afternoon, evening
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullable maps the empty string to nil.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
