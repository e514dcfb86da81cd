package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/martagillo/habitline/internal/core/analytics"
	"github.com/martagillo/habitline/internal/core/domain"
)

var ErrInvalidSortKey = errors.New("invalid summary sort key")

// Trailing-window lengths for recent-activity aggregation.
const (
	dailyActivityWindow  = 14
	weeklyActivityWindow = 8
)

type StreakResult struct {
	Current        int `json:"current"`
	Longest        int `json:"longest"`
	SkippedRecords int `json:"skipped_records,omitempty"`
}

type PerformanceResult struct {
	Percentage    float64     `json:"percentage"`
	Rank          domain.Rank `json:"rank"`
	CheckOffCount int         `json:"checkoff_count"`
	TotalPeriods  int         `json:"total_periods"`
}

type MonthlySeriesResult struct {
	Series         []analytics.MonthlyPoint `json:"series"`
	SkippedRecords int                      `json:"skipped_records,omitempty"`
}

type SummaryRow struct {
	HabitID        string      `json:"habit_id"`
	Name           string      `json:"name"`
	Recurrence     string      `json:"recurrence"`
	CreationDate   string      `json:"creation_date"`
	Status         string      `json:"status"`
	CompletionDate *string     `json:"completion_date,omitempty"`
	CheckedOff     bool        `json:"checked_off"`
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	Performance    float64     `json:"performance"`
	Rank           domain.Rank `json:"rank"`
	SkippedRecords int         `json:"skipped_records,omitempty"`
}

type ActivityBucket struct {
	Period          string   `json:"period"`
	CheckedOff      []string `json:"checked_off"`
	NotCheckedOff   []string `json:"not_checked_off"`
	CheckedCount    int      `json:"checked_off_count"`
	NotCheckedCount int      `json:"not_checked_off_count"`
}

// AnalyticsService derives streaks, adherence ratios, ranks, and activity
// windows from the habit store. It only reads: every operation is a
// synchronous read-then-compute pass with no persisted derived state.
type AnalyticsService struct {
	habitRepo domain.HabitRepository
	checkOffs domain.CheckOffRepository
}

func NewAnalyticsService(habitRepo domain.HabitRepository, checkOffs domain.CheckOffRepository) *AnalyticsService {
	return &AnalyticsService{
		habitRepo: habitRepo,
		checkOffs: checkOffs,
	}
}

func (s *AnalyticsService) Streaks(ctx context.Context, habitID string) (*StreakResult, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	raw, err := s.rawDates(ctx, habitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	current, skipped, err := analytics.CurrentStreak(habit.Recurrence, raw, now)
	if err != nil {
		return nil, err
	}
	longest, _, err := analytics.LongestStreak(habit.Recurrence, raw)
	if err != nil {
		return nil, err
	}

	return &StreakResult{Current: current, Longest: longest, SkippedRecords: skipped}, nil
}

// LifetimePerformance uses the raw row count as its numerator, so a store
// that violated the one-per-period contract shows up as a percentage above
// 100 and an Unknown rank rather than being silently papered over.
func (s *AnalyticsService) LifetimePerformance(ctx context.Context, habitID string) (*PerformanceResult, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	count, err := s.checkOffs.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	total, err := analytics.TotalPeriods(habit.Recurrence, habit.CreationDate, now)
	if err != nil {
		return nil, err
	}
	percentage, err := analytics.LifetimePerformance(habit.Recurrence, habit.CreationDate, count, now)
	if err != nil {
		return nil, err
	}

	return &PerformanceResult{
		Percentage:    percentage,
		Rank:          domain.ClassifyRank(percentage),
		CheckOffCount: count,
		TotalPeriods:  total,
	}, nil
}

func (s *AnalyticsService) MonthlyPerformance(ctx context.Context, habitID string) (*MonthlySeriesResult, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	raw, err := s.rawDates(ctx, habitID)
	if err != nil {
		return nil, err
	}

	series, skipped, err := analytics.MonthlySeries(habit.Recurrence, raw, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &MonthlySeriesResult{Series: series, SkippedRecords: skipped}, nil
}

// Summary produces one row per habit with every derived metric the habit
// overview needs: per-period check-off state, streaks, lifetime
// performance, and rank.
func (s *AnalyticsService) Summary(ctx context.Context) ([]SummaryRow, error) {
	habits, err := s.habitRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rows := make([]SummaryRow, 0, len(habits))

	for _, habit := range habits {
		checkOffs, err := s.checkOffs.ListByHabitID(ctx, habit.ID)
		if err != nil {
			return nil, err
		}

		raw := make([]string, len(checkOffs))
		for i, c := range checkOffs {
			raw[i] = c.Date
		}

		current, skipped, err := analytics.CurrentStreak(habit.Recurrence, raw, now)
		if err != nil {
			return nil, err
		}
		longest, _, err := analytics.LongestStreak(habit.Recurrence, raw)
		if err != nil {
			return nil, err
		}
		percentage, err := analytics.LifetimePerformance(habit.Recurrence, habit.CreationDate, len(checkOffs), now)
		if err != nil {
			return nil, err
		}

		period, err := domain.PeriodOf(habit.Recurrence, now)
		if err != nil {
			return nil, err
		}
		checked, err := s.checkOffs.HasCheckOff(ctx, habit.ID, period)
		if err != nil {
			return nil, err
		}

		row := SummaryRow{
			HabitID:        habit.ID,
			Name:           habit.Name,
			Recurrence:     habit.Recurrence,
			CreationDate:   habit.CreationDate.Format(domain.DateLayout),
			Status:         habit.Status,
			CheckedOff:     checked,
			CurrentStreak:  current,
			LongestStreak:  longest,
			Performance:    percentage,
			Rank:           domain.ClassifyRank(percentage),
			SkippedRecords: skipped,
		}
		if habit.CompletionDate != nil {
			completion := habit.CompletionDate.Format(domain.DateLayout)
			row.CompletionDate = &completion
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// rankOrder positions ranks by desirability for sorting, best first.
var rankOrder = map[domain.Rank]int{
	domain.RankOutstanding:  0,
	domain.RankExcellent:    1,
	domain.RankVeryGood:     2,
	domain.RankGood:         3,
	domain.RankInconsistent: 4,
	domain.RankPoor:         5,
	domain.RankUnknown:      6,
}

// SortSummary orders rows by one of the summary columns.
func SortSummary(rows []SummaryRow, key string, ascending bool) error {
	var less func(a, b SummaryRow) bool

	switch key {
	case "", "name":
		less = func(a, b SummaryRow) bool { return a.Name < b.Name }
	case "recurrence":
		less = func(a, b SummaryRow) bool { return a.Recurrence < b.Recurrence }
	case "creation_date":
		less = func(a, b SummaryRow) bool { return a.CreationDate < b.CreationDate }
	case "status":
		less = func(a, b SummaryRow) bool { return a.Status < b.Status }
	case "completion_date":
		less = func(a, b SummaryRow) bool {
			av, bv := "", ""
			if a.CompletionDate != nil {
				av = *a.CompletionDate
			}
			if b.CompletionDate != nil {
				bv = *b.CompletionDate
			}
			return av < bv
		}
	case "checked_off":
		less = func(a, b SummaryRow) bool { return !a.CheckedOff && b.CheckedOff }
	case "current_streak":
		less = func(a, b SummaryRow) bool { return a.CurrentStreak < b.CurrentStreak }
	case "longest_streak":
		less = func(a, b SummaryRow) bool { return a.LongestStreak < b.LongestStreak }
	case "performance":
		less = func(a, b SummaryRow) bool { return a.Performance < b.Performance }
	case "rank":
		less = func(a, b SummaryRow) bool { return rankOrder[a.Rank] > rankOrder[b.Rank] }
	default:
		return ErrInvalidSortKey
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})

	return nil
}

// RecentActivity partitions active habits of one recurrence into checked /
// not-checked per trailing period: the last 14 days for daily habits, the
// last 8 ISO weeks for weekly ones, oldest first. A habit created after a
// period is excluded from that period's counts entirely.
//
// This issues one HasCheckOff query per (habit, period) pair, which is
// O(habits x window) - fine for a personal tracker, a scaling limit if
// reused against a large fleet of habits.
func (s *AnalyticsService) RecentActivity(ctx context.Context, recurrence string) ([]ActivityBucket, error) {
	if !domain.ValidRecurrence(recurrence) {
		return nil, domain.ErrUnsupportedRecurrence
	}

	habits, err := s.habitRepo.List(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	tracked := habits[:0]
	for _, h := range habits {
		if h.Recurrence == recurrence {
			tracked = append(tracked, h)
		}
	}

	window := dailyActivityWindow
	if recurrence == domain.RecurrenceWeekly {
		window = weeklyActivityWindow
	}

	cur, err := domain.PeriodOf(recurrence, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	periods := make([]domain.Period, window)
	for i := window - 1; i >= 0; i-- {
		periods[i] = cur
		cur = cur.Prev()
	}

	buckets := make([]ActivityBucket, 0, window)
	for _, p := range periods {
		bucket := ActivityBucket{
			Period:        p.Label(),
			CheckedOff:    []string{},
			NotCheckedOff: []string{},
		}

		for _, h := range tracked {
			creationPeriod, err := domain.PeriodOf(recurrence, h.CreationDate)
			if err != nil {
				return nil, err
			}
			if creationPeriod.Start.After(p.Start) {
				continue
			}

			checked, err := s.checkOffs.HasCheckOff(ctx, h.ID, p)
			if err != nil {
				return nil, err
			}
			if checked {
				bucket.CheckedOff = append(bucket.CheckedOff, h.Name)
			} else {
				bucket.NotCheckedOff = append(bucket.NotCheckedOff, h.Name)
			}
		}

		bucket.CheckedCount = len(bucket.CheckedOff)
		bucket.NotCheckedCount = len(bucket.NotCheckedOff)
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

func (s *AnalyticsService) rawDates(ctx context.Context, habitID string) ([]string, error) {
	checkOffs, err := s.checkOffs.ListByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	raw := make([]string, len(checkOffs))
	for i, c := range checkOffs {
		raw[i] = c.Date
	}
	return raw, nil
}
