package repository

import (
	"context"
	"testing"

	"hearthplan/internal/domain"
	"hearthplan/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_GetByOwnerWeek(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSchedule("household")
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByOwnerWeek(ctx, "household", testutil.Monday)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, testutil.Monday, got.WeekStart)

	_, err = repo.GetByOwnerWeek(ctx, "household", testutil.Monday.AddDate(0, 0, 7))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByOwnerWeek(ctx, "stranger", testutil.Monday)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleRepo_UniquePerOwnerWeek(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("household")))
	err := repo.Create(ctx, testutil.NewTestSchedule("household"))
	assert.Error(t, err, "one schedule row per (owner, week)")
}

func TestScheduleRepo_Touch(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSchedule("household")
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Touch(ctx, s.ID))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(s.UpdatedAt) || got.UpdatedAt.Equal(s.UpdatedAt))

	assert.ErrorIs(t, repo.Touch(ctx, "nope"), domain.ErrNotFound)
}
