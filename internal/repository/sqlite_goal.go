package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hearthplan/internal/db"
	"hearthplan/internal/domain"
)

const goalColumns = `id, member_id, name, frequency_per_week, preferred_duration_min,
		preferred_times, priority, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo over a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(dbtx db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: dbtx}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.RecurringGoal) error {
	query := `INSERT INTO recurring_goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.MemberID,
		g.Name,
		g.FrequencyPerWeek,
		g.PreferredDurationMin,
		joinTimesOfDay(g.PreferredTimes),
		string(g.Priority),
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recurring goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.RecurringGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM recurring_goals WHERE id = ?`
	g, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: recurring goal %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("getting recurring goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]domain.RecurringGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM recurring_goals ORDER BY created_at`
	return r.queryGoals(ctx, query)
}

func (r *SQLiteGoalRepo) ListByMember(ctx context.Context, memberID string) ([]domain.RecurringGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM recurring_goals WHERE member_id = ? ORDER BY created_at`
	return r.queryGoals(ctx, query, memberID)
}

func (r *SQLiteGoalRepo) queryGoals(ctx context.Context, query string, args ...any) ([]domain.RecurringGoal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.RecurringGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.RecurringGoal) error {
	query := `UPDATE recurring_goals SET name = ?, frequency_per_week = ?,
		preferred_duration_min = ?, preferred_times = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Name,
		g.FrequencyPerWeek,
		g.PreferredDurationMin,
		joinTimesOfDay(g.PreferredTimes),
		string(g.Priority),
		nowUTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring goal: %w", err)
	}
	return requireRow(res, "recurring goal", g.ID)
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting recurring goal: %w", err)
	}
	return requireRow(res, "recurring goal", id)
}

func scanGoal(row rowScanner) (*domain.RecurringGoal, error) {
	var g domain.RecurringGoal
	var times, priority, createdAt, updatedAt string

	if err := row.Scan(&g.ID, &g.MemberID, &g.Name, &g.FrequencyPerWeek,
		&g.PreferredDurationMin, &times, &priority, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	g.PreferredTimes = splitTimesOfDay(times)
	g.Priority = domain.GoalPriority(priority)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &g, nil
}
