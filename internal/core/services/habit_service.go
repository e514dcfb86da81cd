package services

import (
	"context"
	"errors"
	"log"

	"github.com/martagillo/habitline/internal/core/domain"
)

type HabitService struct {
	repo      domain.HabitRepository
	checkOffs domain.CheckOffRepository
}

func NewHabitService(repo domain.HabitRepository, checkOffs domain.CheckOffRepository) *HabitService {
	return &HabitService{
		repo:      repo,
		checkOffs: checkOffs,
	}
}

type CreateHabitInput struct {
	Name        string
	Description string
	Recurrence  string
}

type UpdateHabitInput struct {
	ID          string
	Name        string
	Description string
	Recurrence  string
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Description, input.Recurrence)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(ctx, habit.Name, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) List(ctx context.Context, status string) ([]*domain.Habit, error) {
	return s.repo.List(ctx, status)
}

// Update edits a habit in place. Changing the recurrence resets the
// check-off history: a cadence switch makes every prior check-off
// meaningless for streak and performance computation, so the store wipes
// them here, before the analytics core ever sees the new cadence.
func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	name := mergeString(input.Name, habit.Name)
	description := mergeString(input.Description, habit.Description)
	recurrence := mergeString(input.Recurrence, habit.Recurrence)

	if name != habit.Name {
		if err := s.ensureNameFree(ctx, name, habit.ID); err != nil {
			return nil, err
		}
	}

	recurrenceChanged := recurrence != habit.Recurrence

	if err := habit.Update(name, description, recurrence); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	// Wipe history only after the new cadence is stored. If the update
	// fails the check-offs stay consistent with the persisted recurrence.
	if recurrenceChanged {
		if err := s.checkOffs.DeleteByHabitID(ctx, habit.ID); err != nil {
			return nil, err
		}
		log.Printf("Recurrence changed for habit %q: check-off history reset", habit.Name)
	}

	return habit, nil
}

func (s *HabitService) Complete(ctx context.Context, id string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := habit.Complete(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.checkOffs.DeleteByHabitID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *HabitService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrHabitNameTaken
	}
	return nil
}
