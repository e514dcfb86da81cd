package services

import (
	"context"
	"time"

	"github.com/martagillo/habitline/internal/core/domain"
)

type CheckOffService struct {
	repo      domain.CheckOffRepository
	habitRepo domain.HabitRepository
}

func NewCheckOffService(repo domain.CheckOffRepository, habitRepo domain.HabitRepository) *CheckOffService {
	return &CheckOffService{
		repo:      repo,
		habitRepo: habitRepo,
	}
}

// CheckOff records that the habit was performed in the current period.
// One logical check-off per period: the guard is an existence check before
// insertion, not a uniqueness constraint, per the store contract.
func (s *CheckOffService) CheckOff(ctx context.Context, habitID string) (*domain.CheckOff, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.Active() {
		return nil, domain.ErrHabitCompleted
	}

	now := time.Now().UTC()

	period, err := domain.PeriodOf(habit.Recurrence, now)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.HasCheckOff(ctx, habitID, period)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyCheckedOff
	}

	checkOff := domain.NewCheckOff(habitID, now)
	if err := checkOff.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, checkOff); err != nil {
		return nil, err
	}

	return checkOff, nil
}

func (s *CheckOffService) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CheckOff, error) {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	return s.repo.ListByHabitID(ctx, habitID)
}
