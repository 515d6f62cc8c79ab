package entry

import (
	"time"

	"github.com/BruksfildServices01/ojt-tracker/internal/models"
	"github.com/BruksfildServices01/ojt-tracker/internal/validation"
)

const DateLayout = "2006-01-02"

// Input is the client payload for creating or replacing an entry. It has
// no owner field; the owner always comes from the session.
type Input struct {
	Date             string  `json:"date"`
	MorningTimeIn    *string `json:"morning_time_in"`
	MorningTimeOut   *string `json:"morning_time_out"`
	AfternoonTimeIn  *string `json:"afternoon_time_in"`
	AfternoonTimeOut *string `json:"afternoon_time_out"`
	EveningTimeIn    *string `json:"evening_time_in"`
	EveningTimeOut   *string `json:"evening_time_out"`
}

// candidate is what the schema rules run against. Morning and afternoon
// times must be present but may be empty strings.
type candidate struct {
	Date             string  `json:"date" validate:"required,datetime=2006-01-02"`
	MorningTimeIn    *string `json:"morning_time_in" validate:"required"`
	MorningTimeOut   *string `json:"morning_time_out" validate:"required"`
	AfternoonTimeIn  *string `json:"afternoon_time_in" validate:"required"`
	AfternoonTimeOut *string `json:"afternoon_time_out" validate:"required"`
	CreatedBy        string  `json:"created_by" validate:"required"`
}

// Entry is a validated, normalized entry.
type Entry struct {
	Date      time.Time
	Morning   Shift
	Afternoon Shift
	Evening   Shift
	CreatedBy string
}

// Validate checks in on behalf of ownerID. On failure it returns a
// *validation.Error naming every offending field.
func Validate(ownerID string, in Input) (Entry, error) {
	if err := validation.Struct(candidate{
		Date:             in.Date,
		MorningTimeIn:    in.MorningTimeIn,
		MorningTimeOut:   in.MorningTimeOut,
		AfternoonTimeIn:  in.AfternoonTimeIn,
		AfternoonTimeOut: in.AfternoonTimeOut,
		CreatedBy:        ownerID,
	}); err != nil {
		return Entry{}, err
	}

	date, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return Entry{}, &validation.Error{Fields: []validation.FieldError{
			{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"},
		}}
	}

	return Entry{
		Date:      date,
		Morning:   Shift{In: *in.MorningTimeIn, Out: *in.MorningTimeOut},
		Afternoon: Shift{In: *in.AfternoonTimeIn, Out: *in.AfternoonTimeOut},
		Evening:   Shift{In: deref(in.EveningTimeIn), Out: deref(in.EveningTimeOut)},
		CreatedBy: ownerID,
	}, nil
}

// NewModel builds the row to insert. id and created_at are left for
// storage to assign.
func (e Entry) NewModel() *models.TimeEntry {
	m := &models.TimeEntry{CreatedBy: e.CreatedBy}
	e.ApplyTo(m)
	return m
}

// ApplyTo overwrites the date and the six time fields of m. The owner is
// never touched.
func (e Entry) ApplyTo(m *models.TimeEntry) {
	m.Date = e.Date
	m.MorningTimeIn = e.Morning.In
	m.MorningTimeOut = e.Morning.Out
	m.AfternoonTimeIn = e.Afternoon.In
	m.AfternoonTimeOut = e.Afternoon.Out
	m.EveningTimeIn = nullable(e.Evening.In)
	m.EveningTimeOut = nullable(e.Evening.Out)
}
