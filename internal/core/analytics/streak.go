// Package analytics derives streaks and performance ratios from a habit's
// raw check-off log. Every function is a pure read-then-compute pass:
// nothing here mutates the log or caches derived state.
package analytics

import (
	"sort"
	"time"

	"github.com/martagillo/habitline/internal/core/domain"
)

// periodSet resolves raw stored dates into their unique periods. Records
// that do not parse are skipped and counted so callers can surface the
// diagnostic; duplicates within one period collapse to a single entry.
func periodSet(recurrence string, rawDates []string) (map[time.Time]struct{}, int, error) {
	if !domain.ValidRecurrence(recurrence) {
		return nil, 0, domain.ErrUnsupportedRecurrence
	}

	set := make(map[time.Time]struct{}, len(rawDates))
	skipped := 0
	for _, raw := range rawDates {
		d, err := domain.ParseCheckOffDate(raw)
		if err != nil {
			skipped++
			continue
		}
		p, err := domain.PeriodOf(recurrence, d)
		if err != nil {
			return nil, 0, err
		}
		set[p.Start] = struct{}{}
	}

	return set, skipped, nil
}

// CurrentStreak walks backward from today's period, counting consecutive
// checked periods. The streak is alive only if today's own period is
// checked; otherwise it is 0 no matter how recent the last check-off was.
func CurrentStreak(recurrence string, rawDates []string, today time.Time) (streak, skipped int, err error) {
	set, skipped, err := periodSet(recurrence, rawDates)
	if err != nil {
		return 0, 0, err
	}

	cur, err := domain.PeriodOf(recurrence, today)
	if err != nil {
		return 0, 0, err
	}

	for {
		if _, ok := set[cur.Start]; !ok {
			return streak, skipped, nil
		}
		streak++
		cur = cur.Prev()
	}
}

// LongestStreak scans the full history for the longest run of consecutive
// checked periods. Unparseable records are transparent gaps: they are
// skipped without breaking a run.
func LongestStreak(recurrence string, rawDates []string) (longest, skipped int, err error) {
	set, skipped, err := periodSet(recurrence, rawDates)
	if err != nil {
		return 0, 0, err
	}
	if len(set) == 0 {
		return 0, skipped, nil
	}

	starts := make([]time.Time, 0, len(set))
	for s := range set {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	run := 0
	var prev domain.Period
	for i, s := range starts {
		p := domain.Period{Recurrence: recurrence, Start: s}
		if i > 0 && p.Equal(prev.Next()) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = p
	}

	return longest, skipped, nil
}
