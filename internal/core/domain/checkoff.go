package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCheckedOff = errors.New("habit already checked off for this period")
	ErrInvalidCheckOff   = errors.New("invalid check-off data")
)

// CheckOff is one append-only record asserting the habit was performed.
// Date keeps the ISO text exactly as stored; analytics parses it tolerantly
// so a single corrupted row cannot poison a whole history scan.
type CheckOff struct {
	ID        string    `json:"id" db:"id"`
	HabitID   string    `json:"habit_id" db:"habit_id"`
	Date      string    `json:"date" db:"checkoff_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewCheckOff(habitID string, date time.Time) *CheckOff {
	return &CheckOff{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		Date:      midnightUTC(date).Format(DateLayout),
		CreatedAt: time.Now().UTC(),
	}
}

func (c *CheckOff) Validate() error {
	if strings.TrimSpace(c.HabitID) == "" {
		return ErrInvalidCheckOff
	}
	if strings.TrimSpace(c.Date) == "" {
		return ErrInvalidCheckOff
	}
	return nil
}

// ParseCheckOffDate reads a stored check-off date. New records are plain
// dates; timestamps that leaked in from older data keep their date part.
func ParseCheckOffDate(raw string) (time.Time, error) {
	datePart, _, _ := strings.Cut(raw, "T")
	return time.ParseInLocation(DateLayout, strings.TrimSpace(datePart), time.UTC)
}
