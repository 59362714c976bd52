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

const memberColumns = `id, name, role, age, created_at, updated_at`

// SQLiteMemberRepo implements MemberRepo over a SQLite database.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(dbtx db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: dbtx}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.FamilyMember) error {
	query := `INSERT INTO family_members (` + memberColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		string(m.Role),
		nullableIntToValue(m.Age),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting family member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id string) (*domain.FamilyMember, error) {
	query := `SELECT ` + memberColumns + ` FROM family_members WHERE id = ?`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: family member %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("getting family member: %w", err)
	}
	return m, nil
}

func (r *SQLiteMemberRepo) List(ctx context.Context) ([]domain.FamilyMember, error) {
	query := `SELECT ` + memberColumns + ` FROM family_members ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing family members: %w", err)
	}
	defer rows.Close()

	var members []domain.FamilyMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning family member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.FamilyMember) error {
	query := `UPDATE family_members SET name = ?, role = ?, age = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name,
		string(m.Role),
		nullableIntToValue(m.Age),
		nowUTC(),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating family member: %w", err)
	}
	return requireRow(res, "family member", m.ID)
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM family_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting family member: %w", err)
	}
	return requireRow(res, "family member", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.FamilyMember, error) {
	var m domain.FamilyMember
	var role, createdAt, updatedAt string
	var age sql.NullInt64

	if err := row.Scan(&m.ID, &m.Name, &role, &age, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.MemberRole(role)
	m.Age = nullIntToPtr(age)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &m, nil
}

// requireRow converts a zero-row write into domain.ErrNotFound.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, entity, id)
	}
	return nil
}
