package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/martagillo/habitline/internal/core/domain"
)

type PostgresCheckOffRepository struct {
	db *sqlx.DB
}

func NewPostgresCheckOffRepository(db *sqlx.DB) *PostgresCheckOffRepository {
	return &PostgresCheckOffRepository{db: db}
}

func (r *PostgresCheckOffRepository) Add(ctx context.Context, c *domain.CheckOff) error {
	query := `
        INSERT INTO checkoffs (id, habit_id, checkoff_date, created_at)
        VALUES (:id, :habit_id, :checkoff_date, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("failed to insert check-off: %w", err)
	}

	return nil
}

func (r *PostgresCheckOffRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CheckOff, error) {
	query := `
        SELECT id, habit_id, checkoff_date, created_at
        FROM checkoffs
        WHERE habit_id = $1
        ORDER BY checkoff_date ASC`

	var checkOffs []*domain.CheckOff
	if err := r.db.SelectContext(ctx, &checkOffs, query, habitID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return checkOffs, nil
}

func (r *PostgresCheckOffRepository) CountByHabitID(ctx context.Context, habitID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM checkoffs WHERE habit_id = $1`, habitID)
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return count, nil
}

// HasCheckOff relies on lexicographic ordering of ISO-8601 date text, so a
// date-only value and one carrying a time suffix both fall inside the range.
func (r *PostgresCheckOffRepository) HasCheckOff(ctx context.Context, habitID string, p domain.Period) (bool, error) {
	from := p.Start.Format(domain.DateLayout)
	until := p.End().AddDate(0, 0, 1).Format(domain.DateLayout)

	query := `
        SELECT EXISTS (
            SELECT 1 FROM checkoffs
            WHERE habit_id = $1 AND checkoff_date >= $2 AND checkoff_date < $3
        )`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, habitID, from, until); err != nil {
		return false, fmt.Errorf("exists query failed: %w", err)
	}

	return exists, nil
}

func (r *PostgresCheckOffRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM checkoffs WHERE habit_id = $1`, habitID)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	return nil
}
