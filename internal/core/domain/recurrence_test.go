package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martagillo/habitline/internal/core/domain"
)

func TestPeriodOf_Daily(t *testing.T) {
	t.Run("Success: Should normalize any instant to UTC midnight", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		instant := time.Date(2024, 3, 15, 0, 30, 0, 0, loc) // 2024-03-14 23:30 UTC

		p, err := domain.PeriodOf(domain.RecurrenceDaily, instant)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), p.Start)
		assert.Equal(t, p.Start, p.End())
		assert.Equal(t, "2024-03-14", p.Label())
	})

	t.Run("Success: Prev and Next step by one day", func(t *testing.T) {
		p, err := domain.PeriodOf(domain.RecurrenceDaily, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", p.Prev().Label())
		assert.Equal(t, "2024-03-02", p.Next().Label())
	})
}

func TestPeriodOf_Weekly(t *testing.T) {
	t.Run("Success: Should snap to the Monday of the ISO week", func(t *testing.T) {
		wednesday := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

		p, err := domain.PeriodOf(domain.RecurrenceWeekly, wednesday)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), p.Start)
		assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), p.End())
	})

	t.Run("Edge Case: Sunday belongs to the week started the previous Monday", func(t *testing.T) {
		sunday := time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC)

		p, err := domain.PeriodOf(domain.RecurrenceWeekly, sunday)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), p.Start)
	})

	t.Run("Edge Case: Monday is its own period start", func(t *testing.T) {
		monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

		p, err := domain.PeriodOf(domain.RecurrenceWeekly, monday)

		require.NoError(t, err)
		assert.Equal(t, monday, p.Start)
	})

	t.Run("Edge Case: ISO week label crosses the calendar year boundary", func(t *testing.T) {
		// 2024-12-31 falls in ISO week 1 of 2025.
		newYearsEve := time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)

		p, err := domain.PeriodOf(domain.RecurrenceWeekly, newYearsEve)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), p.Start)
		assert.Equal(t, "2025-W01", p.Label())
	})

	t.Run("Success: Prev and Next step by one week", func(t *testing.T) {
		p, err := domain.PeriodOf(domain.RecurrenceWeekly, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.Prev().Start)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), p.Next().Start)
		assert.True(t, p.Equal(p.Prev().Next()))
	})
}

func TestPeriodOf_UnsupportedRecurrence(t *testing.T) {
	_, err := domain.PeriodOf("fortnightly", time.Now())

	assert.ErrorIs(t, err, domain.ErrUnsupportedRecurrence)
}

func TestValidRecurrence(t *testing.T) {
	assert.True(t, domain.ValidRecurrence(domain.RecurrenceDaily))
	assert.True(t, domain.ValidRecurrence(domain.RecurrenceWeekly))
	assert.False(t, domain.ValidRecurrence("Daily"))
	assert.False(t, domain.ValidRecurrence(""))
}
