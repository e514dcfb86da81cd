package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong = errors.New("habit description is too long (max 500 chars)")
	ErrHabitNameTaken   = errors.New("a habit with this name already exists")
	ErrHabitCompleted   = errors.New("habit has already been completed")
)

const (
	StatusActive   = "active"
	StatusComplete = "complete"

	MaxNameLen = 100
	MaxDescLen = 500
)

type Habit struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Description    string     `json:"description,omitempty" db:"description"`
	Recurrence     string     `json:"recurrence" db:"recurrence"`
	CreationDate   time.Time  `json:"creation_date" db:"creation_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty" db:"completion_date"`
	Status         string     `json:"status" db:"status"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

func validateHabit(name, description, recurrence string) (string, string, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return "", "", ErrHabitNameEmpty
	}
	if len(cleanName) > MaxNameLen {
		return "", "", ErrHabitNameTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if len(cleanDesc) > MaxDescLen {
		return "", "", ErrHabitDescTooLong
	}

	if !ValidRecurrence(recurrence) {
		return "", "", ErrUnsupportedRecurrence
	}

	return cleanName, cleanDesc, nil
}

func NewHabit(name, description, recurrence string) (*Habit, error) {
	cleanName, cleanDesc, err := validateHabit(name, description, recurrence)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:           uuid.NewString(),
		Name:         cleanName,
		Description:  cleanDesc,
		Recurrence:   recurrence,
		CreationDate: midnightUTC(now),
		Status:       StatusActive,
		UpdatedAt:    now,
	}, nil
}

// Update applies an edit. A recurrence change is accepted here as plain
// data; deleting the now-meaningless check-off history is the mutation
// service's responsibility, never the entity's or the analytics core's.
func (h *Habit) Update(name, description, recurrence string) error {
	if h.Status == StatusComplete {
		return ErrHabitCompleted
	}

	cleanName, cleanDesc, err := validateHabit(name, description, recurrence)
	if err != nil {
		return err
	}

	h.Name = cleanName
	h.Description = cleanDesc
	h.Recurrence = recurrence
	h.UpdatedAt = time.Now().UTC()

	return nil
}

func (h *Habit) Complete() error {
	if h.Status == StatusComplete {
		return ErrHabitCompleted
	}

	now := time.Now().UTC()
	completion := midnightUTC(now)
	h.CompletionDate = &completion
	h.Status = StatusComplete
	h.UpdatedAt = now

	return nil
}

func (h *Habit) Active() bool {
	return h.Status == StatusActive
}
