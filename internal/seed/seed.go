// Package seed populates an empty store with a set of predefined habits and
// generated check-off history, so the analytics endpoints have data to work
// with on a fresh install.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/martagillo/habitline/internal/core/domain"
)

type predefinedHabit struct {
	name         string
	description  string
	recurrence   string
	creationDays int
	numCheckOffs int
	minStreak    int
}

var predefinedHabits = []predefinedHabit{
	{"Drink 1.5l of Water", "Keep Hydrated", domain.RecurrenceDaily, 180, 130, 8},
	{"Have a Siesta", "Reset the brain after work", domain.RecurrenceDaily, 120, 73, 7},
	{"Read a Book", "Remain intellectual", domain.RecurrenceWeekly, 180, 23, 2},
	{"Cook Special Meal", "Impress the family with new skills", domain.RecurrenceWeekly, 90, 9, 1},
	{"Run", "Go for daily run in the mountains", domain.RecurrenceDaily, 180, 148, 10},
}

// Run inserts the predefined habits and their check-offs. It is a no-op when
// the store already contains habits. The generator is seeded with a fixed
// value so a fresh database always produces the same history.
func Run(ctx context.Context, habits domain.HabitRepository, checkOffs domain.CheckOffRepository) error {
	existing, err := habits.List(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to inspect habit store: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	for _, p := range predefinedHabits {
		habit, err := domain.NewHabit(p.name, p.description, p.recurrence)
		if err != nil {
			return fmt.Errorf("invalid predefined habit %q: %w", p.name, err)
		}
		habit.CreationDate = habit.CreationDate.AddDate(0, 0, -p.creationDays)

		if err := habits.Create(ctx, habit); err != nil {
			return fmt.Errorf("failed to seed habit %q: %w", p.name, err)
		}

		dates, err := generateDates(rng, p.recurrence, habit.CreationDate, now, p.numCheckOffs, p.minStreak)
		if err != nil {
			return err
		}

		for _, d := range dates {
			if err := checkOffs.Add(ctx, domain.NewCheckOff(habit.ID, d)); err != nil {
				return fmt.Errorf("failed to seed check-off for %q: %w", p.name, err)
			}
		}

		log.Printf("[SEED] Created habit %q with %d check-offs", p.name, len(dates))
	}

	return nil
}

// generateDates picks one period start per chosen period, guaranteeing at
// least one run of minStreak consecutive periods.
func generateDates(rng *rand.Rand, recurrence string, from, until time.Time, count, minStreak int) ([]time.Time, error) {
	p, err := domain.PeriodOf(recurrence, from)
	if err != nil {
		return nil, err
	}

	var available []time.Time
	for !p.Start.After(until) {
		available = append(available, p.Start)
		p = p.Next()
	}
	if len(available) == 0 {
		return nil, nil
	}

	if count > len(available) {
		count = len(available)
	}
	if minStreak > len(available) {
		minStreak = len(available)
	}

	chosen := make(map[time.Time]struct{}, count)
	streakStart := rng.Intn(len(available) - minStreak + 1)
	for _, d := range available[streakStart : streakStart+minStreak] {
		chosen[d] = struct{}{}
	}

	for len(chosen) < count {
		chosen[available[rng.Intn(len(available))]] = struct{}{}
	}

	dates := make([]time.Time, 0, len(chosen))
	for d := range chosen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates, nil
}
