package analytics

import (
	"time"

	"github.com/martagillo/habitline/internal/core/domain"
)

const monthLayout = "2006-01"

// MonthlyPoint is one month's bucket in a performance series.
type MonthlyPoint struct {
	Month      string  `json:"month"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LifetimePerformance is the cumulative adherence ratio since creation:
// check-offs over total eligible periods, as a percentage. The creation
// day (or week) itself counts as one eligible period. A creation date in
// the future yields 0 rather than a division by zero or a negative total.
func LifetimePerformance(recurrence string, creationDate time.Time, checkOffCount int, today time.Time) (float64, error) {
	total, err := TotalPeriods(recurrence, creationDate, today)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, nil
	}
	return float64(checkOffCount) / float64(total) * 100, nil
}

// TotalPeriods counts the eligible periods between creation and today,
// inclusive of the creation day or week. 0 when creation is in the future.
func TotalPeriods(recurrence string, creationDate, today time.Time) (int, error) {
	days := int(dayUTC(today).Sub(dayUTC(creationDate)).Hours() / 24)
	if days < 0 {
		return 0, nil
	}

	switch recurrence {
	case domain.RecurrenceDaily:
		return days + 1, nil
	case domain.RecurrenceWeekly:
		return days/7 + 1, nil
	default:
		return 0, domain.ErrUnsupportedRecurrence
	}
}

// MonthlySeries buckets the check-off log by calendar month, from the
// earliest check-off's month through the current month with zero-count
// entries for idle months, so consumers never have to distinguish "no
// data" from "zero adherence". Each month's percentage is normalized by
// that month's own eligible-period count, independent of the lifetime
// ratio.
func MonthlySeries(recurrence string, rawDates []string, today time.Time) ([]MonthlyPoint, int, error) {
	if !domain.ValidRecurrence(recurrence) {
		return nil, 0, domain.ErrUnsupportedRecurrence
	}

	counts := make(map[string]int)
	var earliest time.Time
	skipped := 0
	for _, raw := range rawDates {
		d, err := domain.ParseCheckOffDate(raw)
		if err != nil {
			skipped++
			continue
		}
		counts[d.Format(monthLayout)]++
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
	}
	if earliest.IsZero() {
		return []MonthlyPoint{}, skipped, nil
	}

	now := dayUTC(today)
	cursor := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var series []MonthlyPoint
	for !cursor.After(last) {
		key := cursor.Format(monthLayout)
		count := counts[key]
		pct := 0.0
		if expected := expectedPeriods(recurrence, cursor, now); expected > 0 {
			pct = float64(count) / float64(expected) * 100
		}
		series = append(series, MonthlyPoint{Month: key, Count: count, Percentage: pct})
		cursor = cursor.AddDate(0, 1, 0)
	}

	return series, skipped, nil
}

// expectedPeriods is the cadence-normalized denominator for one month:
// daily habits can be checked once per calendar day (clamped to the days
// elapsed so far when the month is the current one, since future days
// cannot yet be checked off), weekly habits once per ISO week intersecting
// the month.
func expectedPeriods(recurrence string, monthStart, today time.Time) int {
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	switch recurrence {
	case domain.RecurrenceDaily:
		if monthStart.Year() == today.Year() && monthStart.Month() == today.Month() {
			return today.Day()
		}
		return daysInMonth
	case domain.RecurrenceWeekly:
		offset := (int(monthStart.Weekday()) + 6) % 7 // Monday = 0
		return (daysInMonth + offset + 6) / 7
	default:
		return 0
	}
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
