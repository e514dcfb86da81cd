package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/martagillo/habitline/internal/core/domain"
)

// In-memory store implementations, used by tests and by the API when no
// database is configured. Clones cross the boundary in both directions so
// callers can never alias the stored state.

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *InMemoryHabitRepository) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.store {
		if h.Name == name {
			clone := *h
			return &clone, nil
		}
	}
	return nil, domain.ErrHabitNotFound
}

func (r *InMemoryHabitRepository) List(ctx context.Context, status string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*domain.Habit, 0, len(r.store))
	for _, h := range r.store {
		if status != "" && h.Status != status {
			continue
		}
		clone := *h
		list = append(list, &clone)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreationDate.Equal(list[j].CreationDate) {
			return list[i].CreationDate.Before(list[j].CreationDate)
		}
		return list[i].Name < list[j].Name
	})

	return list, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.store, id)
	return nil
}

type InMemoryCheckOffRepository struct {
	store map[string][]*domain.CheckOff // keyed by habit ID

	mu sync.RWMutex
}

func NewInMemoryCheckOffRepository() *InMemoryCheckOffRepository {
	return &InMemoryCheckOffRepository{
		store: make(map[string][]*domain.CheckOff),
	}
}

func (r *InMemoryCheckOffRepository) Add(ctx context.Context, checkOff *domain.CheckOff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *checkOff
	r.store[checkOff.HabitID] = append(r.store[checkOff.HabitID], &clone)
	return nil
}

func (r *InMemoryCheckOffRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CheckOff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*domain.CheckOff, 0, len(r.store[habitID]))
	for _, c := range r.store[habitID] {
		clone := *c
		list = append(list, &clone)
	}

	// ISO dates order lexicographically
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })

	return list, nil
}

func (r *InMemoryCheckOffRepository) CountByHabitID(ctx context.Context, habitID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store[habitID]), nil
}

func (r *InMemoryCheckOffRepository) HasCheckOff(ctx context.Context, habitID string, p domain.Period) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.store[habitID] {
		d, err := domain.ParseCheckOffDate(c.Date)
		if err != nil {
			continue
		}
		if !d.Before(p.Start) && !d.After(p.End()) {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryCheckOffRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, habitID)
	return nil
}
