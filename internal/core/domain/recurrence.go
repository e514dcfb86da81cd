package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

const DateLayout = "2006-01-02"

// ErrUnsupportedRecurrence signals a corrupted or unrecognized habit record.
// It is fatal to the computation that hits it, never silently recovered.
var ErrUnsupportedRecurrence = errors.New("unsupported recurrence type")

func ValidRecurrence(r string) bool {
	return r == RecurrenceDaily || r == RecurrenceWeekly
}

// Period is the atomic time bucket implied by a recurrence: one calendar
// day, or one ISO week. Start is normalized to UTC midnight (the Monday of
// the week for weekly periods), so two periods are the same bucket iff
// their Recurrence and Start are equal.
type Period struct {
	Recurrence string    `json:"recurrence"`
	Start      time.Time `json:"start"`
}

func PeriodOf(recurrence string, t time.Time) (Period, error) {
	day := midnightUTC(t)
	switch recurrence {
	case RecurrenceDaily:
		return Period{Recurrence: RecurrenceDaily, Start: day}, nil
	case RecurrenceWeekly:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return Period{Recurrence: RecurrenceWeekly, Start: day.AddDate(0, 0, -offset)}, nil
	default:
		return Period{}, ErrUnsupportedRecurrence
	}
}

func (p Period) Prev() Period { return p.step(-1) }

func (p Period) Next() Period { return p.step(1) }

func (p Period) step(n int) Period {
	if p.Recurrence == RecurrenceWeekly {
		return Period{Recurrence: p.Recurrence, Start: p.Start.AddDate(0, 0, 7*n)}
	}
	return Period{Recurrence: p.Recurrence, Start: p.Start.AddDate(0, 0, n)}
}

// End is the last day inside the period: the day itself for daily periods,
// the Sunday for weekly ones.
func (p Period) End() time.Time {
	if p.Recurrence == RecurrenceWeekly {
		return p.Start.AddDate(0, 0, 6)
	}
	return p.Start
}

func (p Period) Equal(o Period) bool {
	return p.Recurrence == o.Recurrence && p.Start.Equal(o.Start)
}

// Label renders the period identity: the date for daily periods, the ISO
// (year, week) pair for weekly ones.
func (p Period) Label() string {
	if p.Recurrence == RecurrenceWeekly {
		year, week := p.Start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return p.Start.Format(DateLayout)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
