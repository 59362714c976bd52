package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hearthplan/internal/db"
	"hearthplan/internal/domain"
)

const blockColumns = `id, schedule_id, title, category, start_at, end_at,
		owner_id, is_shared, origin_goal_id, origin, created_at, updated_at, deleted_at`

// SQLiteBlockRepo implements BlockRepo over a SQLite database.
type SQLiteBlockRepo struct {
	db db.DBTX
}

// NewSQLiteBlockRepo creates a new SQLiteBlockRepo.
func NewSQLiteBlockRepo(dbtx db.DBTX) *SQLiteBlockRepo {
	return &SQLiteBlockRepo{db: dbtx}
}

func (r *SQLiteBlockRepo) Create(ctx context.Context, b *domain.TimeBlock) error {
	query := `INSERT INTO time_blocks (` + blockColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ScheduleID,
		b.Title,
		string(b.Category),
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
		nullableStringToValue(b.OwnerID),
		boolToInt(b.IsShared),
		nullableStringToValue(b.OriginGoalID),
		string(b.Origin),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(b.DeletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time block: %w", err)
	}
	return nil
}

func (r *SQLiteBlockRepo) CreateMany(ctx context.Context, blocks []*domain.TimeBlock) error {
	for _, b := range blocks {
		if err := r.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteBlockRepo) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM time_blocks WHERE id = ? AND deleted_at IS NULL`
	b, err := scanBlock(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: time block %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("getting time block: %w", err)
	}
	return b, nil
}

func (r *SQLiteBlockRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]domain.TimeBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM time_blocks
		WHERE schedule_id = ? AND deleted_at IS NULL
		ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing time blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.TimeBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time block: %w", err)
		}
		blocks = append(blocks, *b)
	}
	return blocks, rows.Err()
}

func (r *SQLiteBlockRepo) Update(ctx context.Context, b *domain.TimeBlock) error {
	query := `UPDATE time_blocks SET title = ?, category = ?, start_at = ?, end_at = ?,
		owner_id = ?, is_shared = ?, origin_goal_id = ?, origin = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		b.Title,
		string(b.Category),
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
		nullableStringToValue(b.OwnerID),
		boolToInt(b.IsShared),
		nullableStringToValue(b.OriginGoalID),
		string(b.Origin),
		nowUTC(),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time block: %w", err)
	}
	return requireRow(res, "time block", b.ID)
}

func (r *SQLiteBlockRepo) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE time_blocks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		nowUTC(), id)
	if err != nil {
		return fmt.Errorf("soft-deleting time block: %w", err)
	}
	return requireRow(res, "time block", id)
}

func (r *SQLiteBlockRepo) SoftDeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, 0, len(ids)+1)
	args = append(args, nowUTC())
	for _, id := range ids {
		args = append(args, id)
	}
	query := `UPDATE time_blocks SET deleted_at = ?
		WHERE id IN (` + placeholders + `) AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft-deleting time blocks: %w", err)
	}
	return nil
}

func scanBlock(row rowScanner) (*domain.TimeBlock, error) {
	var b domain.TimeBlock
	var category, origin, startAt, endAt, createdAt, updatedAt string
	var ownerID, goalID, deletedAt sql.NullString
	var isShared int

	if err := row.Scan(&b.ID, &b.ScheduleID, &b.Title, &category, &startAt, &endAt,
		&ownerID, &isShared, &goalID, &origin, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}
	b.Category = domain.BlockCategory(category)
	b.Origin = domain.BlockOrigin(origin)
	b.Start, _ = time.Parse(time.RFC3339, startAt)
	b.End, _ = time.Parse(time.RFC3339, endAt)
	b.OwnerID = nullStringToPtr(ownerID)
	b.IsShared = intToBool(isShared)
	b.OriginGoalID = nullStringToPtr(goalID)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	b.DeletedAt = parseNullableTime(deletedAt, time.RFC3339)
	return &b, nil
}
