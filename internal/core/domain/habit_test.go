package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martagillo/habitline/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Should create an active habit with trimmed fields", func(t *testing.T) {
		h, err := domain.NewHabit("  Read a Book  ", " Remain intellectual ", domain.RecurrenceWeekly)

		require.NoError(t, err)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, "Read a Book", h.Name)
		assert.Equal(t, "Remain intellectual", h.Description)
		assert.Equal(t, domain.StatusActive, h.Status)
		assert.True(t, h.Active())
		assert.Nil(t, h.CompletionDate)
		assert.Equal(t, h.CreationDate, h.CreationDate.UTC())
	})

	t.Run("Fail: Empty name", func(t *testing.T) {
		_, err := domain.NewHabit("   ", "desc", domain.RecurrenceDaily)
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)
	})

	t.Run("Fail: Name too long", func(t *testing.T) {
		_, err := domain.NewHabit(strings.Repeat("x", domain.MaxNameLen+1), "", domain.RecurrenceDaily)
		assert.ErrorIs(t, err, domain.ErrHabitNameTooLong)
	})

	t.Run("Fail: Description too long", func(t *testing.T) {
		_, err := domain.NewHabit("Run", strings.Repeat("x", domain.MaxDescLen+1), domain.RecurrenceDaily)
		assert.ErrorIs(t, err, domain.ErrHabitDescTooLong)
	})

	t.Run("Fail: Unknown recurrence", func(t *testing.T) {
		_, err := domain.NewHabit("Run", "", "monthly")
		assert.ErrorIs(t, err, domain.ErrUnsupportedRecurrence)
	})
}

func TestHabit_Update(t *testing.T) {
	t.Run("Success: Should apply new values", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", "old", domain.RecurrenceDaily)

		err := h.Update("Sprint", "new", domain.RecurrenceWeekly)

		require.NoError(t, err)
		assert.Equal(t, "Sprint", h.Name)
		assert.Equal(t, "new", h.Description)
		assert.Equal(t, domain.RecurrenceWeekly, h.Recurrence)
	})

	t.Run("Fail: Completed habits are immutable", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		require.NoError(t, h.Complete())

		err := h.Update("Sprint", "", domain.RecurrenceDaily)

		assert.ErrorIs(t, err, domain.ErrHabitCompleted)
		assert.Equal(t, "Run", h.Name)
	})

	t.Run("Fail: Invalid values leave the habit untouched", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", "desc", domain.RecurrenceDaily)

		err := h.Update("", "desc", domain.RecurrenceDaily)

		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)
		assert.Equal(t, "Run", h.Name)
	})
}

func TestHabit_Complete(t *testing.T) {
	t.Run("Success: Should set status and completion date", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)

		err := h.Complete()

		require.NoError(t, err)
		assert.Equal(t, domain.StatusComplete, h.Status)
		assert.False(t, h.Active())
		require.NotNil(t, h.CompletionDate)
	})

	t.Run("Fail: Completing twice", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", "", domain.RecurrenceDaily)
		require.NoError(t, h.Complete())

		err := h.Complete()

		assert.ErrorIs(t, err, domain.ErrHabitCompleted)
	})
}
