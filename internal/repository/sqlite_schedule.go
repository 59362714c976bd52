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

// weekLayout stores week starts date-only; a schedule is keyed by the civil
// Monday, not an instant.
const weekLayout = "2006-01-02"

const scheduleColumns = `id, owner_id, week_start, created_at, updated_at`

// SQLiteScheduleRepo implements ScheduleRepo over a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(dbtx db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: dbtx}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (` + scheduleColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.OwnerID,
		s.WeekStart.Format(weekLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: schedule %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("getting schedule: %w", err)
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) GetByOwnerWeek(ctx context.Context, ownerID string, weekStart time.Time) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE owner_id = ? AND week_start = ?`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, ownerID, weekStart.Format(weekLayout)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: schedule for %s week %s", domain.ErrNotFound, ownerID, weekStart.Format(weekLayout))
		}
		return nil, fmt.Errorf("getting schedule by week: %w", err)
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) Touch(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE schedules SET updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("touching schedule: %w", err)
	}
	return requireRow(res, "schedule", id)
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var weekStart, createdAt, updatedAt string

	if err := row.Scan(&s.ID, &s.OwnerID, &weekStart, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.WeekStart, _ = time.Parse(weekLayout, weekStart)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}
