package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martagillo/habitline/internal/core/domain"
)

func TestNewCheckOff(t *testing.T) {
	instant := time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC)

	c := domain.NewCheckOff("habit-1", instant)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "habit-1", c.HabitID)
	assert.Equal(t, "2024-03-15", c.Date)
	assert.NoError(t, c.Validate())
}

func TestCheckOff_Validate(t *testing.T) {
	t.Run("Fail: Missing habit ID", func(t *testing.T) {
		c := &domain.CheckOff{HabitID: "  ", Date: "2024-03-15"}
		assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCheckOff)
	})

	t.Run("Fail: Missing date", func(t *testing.T) {
		c := &domain.CheckOff{HabitID: "habit-1", Date: ""}
		assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCheckOff)
	})
}

func TestParseCheckOffDate(t *testing.T) {
	t.Run("Success: Plain ISO date", func(t *testing.T) {
		d, err := domain.ParseCheckOffDate("2024-03-15")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Success: Legacy timestamp keeps its date part", func(t *testing.T) {
		d, err := domain.ParseCheckOffDate("2024-03-15T22:10:05")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Success: Surrounding whitespace is tolerated", func(t *testing.T) {
		d, err := domain.ParseCheckOffDate(" 2024-03-15 ")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Fail: Garbage", func(t *testing.T) {
		_, err := domain.ParseCheckOffDate("not-a-date")
		assert.Error(t, err)
	})

	t.Run("Fail: Out-of-range month", func(t *testing.T) {
		_, err := domain.ParseCheckOffDate("2024-13-01")
		assert.Error(t, err)
	})
}
