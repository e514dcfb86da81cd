package domain

import (
	"context"
	"errors"
)

var ErrHabitNotFound = errors.New("habit not found")

type HabitRepository interface {
	// Create persists a new habit definition in the storage.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// GetByName retrieves a habit by its unique name.
	GetByName(ctx context.Context, name string) (*Habit, error)

	// List retrieves habits, optionally filtered by status. An empty
	// status lists everything.
	List(ctx context.Context, status string) ([]*Habit, error)

	// Update modifies the state of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit from the system.
	Delete(ctx context.Context, id string) error
}

type CheckOffRepository interface {
	// Add appends a check-off record. The log is append-only; callers
	// guard the one-per-period rule with HasCheckOff before inserting.
	Add(ctx context.Context, checkOff *CheckOff) error

	// ListByHabitID retrieves all check-offs for a habit, ascending by date.
	ListByHabitID(ctx context.Context, habitID string) ([]*CheckOff, error)

	// CountByHabitID counts all check-off rows for a habit, including any
	// the analytics engine would skip as unparseable.
	CountByHabitID(ctx context.Context, habitID string) (int, error)

	// HasCheckOff reports whether any check-off falls inside the period.
	HasCheckOff(ctx context.Context, habitID string, p Period) (bool, error)

	// DeleteByHabitID removes a habit's entire check-off history. Used on
	// habit deletion and on a recurrence change, never by analytics.
	DeleteByHabitID(ctx context.Context, habitID string) error
}
