package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martagillo/habitline/internal/adapters/repository"
	"github.com/martagillo/habitline/internal/core/domain"
)

func TestInMemoryHabitRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Create then GetByID and GetByName", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		require.NoError(t, repo.Create(ctx, h))

		byID, err := repo.GetByID(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, h.Name, byID.Name)

		byName, err := repo.GetByName(ctx, "Run")
		require.NoError(t, err)
		assert.Equal(t, h.ID, byName.ID)
	})

	t.Run("Success: Stored state is isolated from caller mutation", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		require.NoError(t, repo.Create(ctx, h))

		h.Name = "Mutated After Store"

		stored, err := repo.GetByID(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, "Run", stored.Name)

		stored.Name = "Mutated After Read"
		again, _ := repo.GetByID(ctx, h.ID)
		assert.Equal(t, "Run", again.Name)
	})

	t.Run("Success: List filters by status and orders by creation date", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()

		older, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		older.CreationDate = older.CreationDate.AddDate(0, 0, -30)
		newer, _ := domain.NewHabit("Read a Book", "", domain.RecurrenceWeekly)
		require.NoError(t, newer.Complete())

		require.NoError(t, repo.Create(ctx, newer))
		require.NoError(t, repo.Create(ctx, older))

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Run", all[0].Name)

		active, err := repo.List(ctx, domain.StatusActive)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Run", active[0].Name)
	})

	t.Run("Success: Update and Delete", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		require.NoError(t, repo.Create(ctx, h))

		h.Description = "updated"
		require.NoError(t, repo.Update(ctx, h))
		stored, _ := repo.GetByID(ctx, h.ID)
		assert.Equal(t, "updated", stored.Description)

		require.NoError(t, repo.Delete(ctx, h.ID))
		_, err := repo.GetByID(ctx, h.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: Missing habit", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()

		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		_, err = repo.GetByName(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		assert.ErrorIs(t, repo.Update(ctx, &domain.Habit{ID: "ghost"}), domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "ghost"), domain.ErrHabitNotFound)
	})
}

func TestInMemoryCheckOffRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Add, list ascending, count", func(t *testing.T) {
		repo := repository.NewInMemoryCheckOffRepository()
		now := time.Now().UTC()

		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-1", now)))
		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-1", now.AddDate(0, 0, -3))))
		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-2", now)))

		list, err := repo.ListByHabitID(ctx, "habit-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Less(t, list[0].Date, list[1].Date)

		count, err := repo.CountByHabitID(ctx, "habit-1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Success: HasCheckOff respects period boundaries", func(t *testing.T) {
		repo := repository.NewInMemoryCheckOffRepository()
		wednesday := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-1", wednesday)))

		sameWeek, _ := domain.PeriodOf(domain.RecurrenceWeekly, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
		nextWeek, _ := domain.PeriodOf(domain.RecurrenceWeekly, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		sameDay, _ := domain.PeriodOf(domain.RecurrenceDaily, wednesday)
		nextDay, _ := domain.PeriodOf(domain.RecurrenceDaily, wednesday.AddDate(0, 0, 1))

		for _, tc := range []struct {
			period domain.Period
			want   bool
		}{
			{sameWeek, true}, {nextWeek, false}, {sameDay, true}, {nextDay, false},
		} {
			got, err := repo.HasCheckOff(ctx, "habit-1", tc.period)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "period %s", tc.period.Label())
		}
	})

	t.Run("Edge Case: Unparseable rows never match a period", func(t *testing.T) {
		repo := repository.NewInMemoryCheckOffRepository()
		require.NoError(t, repo.Add(ctx, &domain.CheckOff{ID: "bad", HabitID: "habit-1", Date: "garbage"}))

		p, _ := domain.PeriodOf(domain.RecurrenceDaily, time.Now().UTC())
		got, err := repo.HasCheckOff(ctx, "habit-1", p)

		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("Success: DeleteByHabitID wipes only that habit", func(t *testing.T) {
		repo := repository.NewInMemoryCheckOffRepository()
		now := time.Now().UTC()
		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-1", now)))
		require.NoError(t, repo.Add(ctx, domain.NewCheckOff("habit-2", now)))

		require.NoError(t, repo.DeleteByHabitID(ctx, "habit-1"))

		count, _ := repo.CountByHabitID(ctx, "habit-1")
		assert.Zero(t, count)
		count, _ = repo.CountByHabitID(ctx, "habit-2")
		assert.Equal(t, 1, count)
	})
}
