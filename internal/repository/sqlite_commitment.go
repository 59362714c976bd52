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

const commitmentColumns = `id, owner_id, title, category, day_of_week,
		start_time, end_time, is_shared, created_at, updated_at`

// SQLiteCommitmentRepo implements CommitmentRepo over a SQLite database.
type SQLiteCommitmentRepo struct {
	db db.DBTX
}

// NewSQLiteCommitmentRepo creates a new SQLiteCommitmentRepo.
func NewSQLiteCommitmentRepo(dbtx db.DBTX) *SQLiteCommitmentRepo {
	return &SQLiteCommitmentRepo{db: dbtx}
}

func (r *SQLiteCommitmentRepo) Create(ctx context.Context, c *domain.RecurringCommitment) error {
	query := `INSERT INTO recurring_commitments (` + commitmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		nullableStringToValue(c.OwnerID),
		c.Title,
		string(c.Category),
		c.DayOfWeek,
		c.StartTime,
		c.EndTime,
		boolToInt(c.IsShared),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recurring commitment: %w", err)
	}
	return nil
}

func (r *SQLiteCommitmentRepo) GetByID(ctx context.Context, id string) (*domain.RecurringCommitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM recurring_commitments WHERE id = ?`
	c, err := scanCommitment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: recurring commitment %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("getting recurring commitment: %w", err)
	}
	return c, nil
}

func (r *SQLiteCommitmentRepo) List(ctx context.Context) ([]domain.RecurringCommitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM recurring_commitments
		ORDER BY day_of_week, start_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recurring commitments: %w", err)
	}
	defer rows.Close()

	var commitments []domain.RecurringCommitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring commitment: %w", err)
		}
		commitments = append(commitments, *c)
	}
	return commitments, rows.Err()
}

func (r *SQLiteCommitmentRepo) Update(ctx context.Context, c *domain.RecurringCommitment) error {
	query := `UPDATE recurring_commitments SET owner_id = ?, title = ?, category = ?,
		day_of_week = ?, start_time = ?, end_time = ?, is_shared = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(c.OwnerID),
		c.Title,
		string(c.Category),
		c.DayOfWeek,
		c.StartTime,
		c.EndTime,
		boolToInt(c.IsShared),
		nowUTC(),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring commitment: %w", err)
	}
	return requireRow(res, "recurring commitment", c.ID)
}

func (r *SQLiteCommitmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_commitments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting recurring commitment: %w", err)
	}
	return requireRow(res, "recurring commitment", id)
}

func scanCommitment(row rowScanner) (*domain.RecurringCommitment, error) {
	var c domain.RecurringCommitment
	var ownerID sql.NullString
	var category, createdAt, updatedAt string
	var isShared int

	if err := row.Scan(&c.ID, &ownerID, &c.Title, &category, &c.DayOfWeek,
		&c.StartTime, &c.EndTime, &isShared, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.OwnerID = nullStringToPtr(ownerID)
	c.Category = domain.BlockCategory(category)
	c.IsShared = intToBool(isShared)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &c, nil
}
