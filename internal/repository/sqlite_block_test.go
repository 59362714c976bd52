package repository

import (
	"context"
	"database/sql"
	"testing"

	"hearthplan/internal/domain"
	"hearthplan/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlockFixture(t *testing.T) (*sql.DB, *SQLiteBlockRepo, *domain.Schedule) {
	t.Helper()
	database := testutil.NewTestDB(t)
	schedules := NewSQLiteScheduleRepo(database)
	schedule := testutil.NewTestSchedule("household")
	require.NoError(t, schedules.Create(context.Background(), schedule))
	return database, NewSQLiteBlockRepo(database), schedule
}

func TestBlockRepo_RoundTrip(t *testing.T) {
	_, blocks, schedule := newBlockFixture(t)
	ctx := context.Background()

	b := testutil.NewTestBlock(schedule.ID, testutil.StrPtr("alice"), domain.OriginFixed, 2, 9, 17)
	b.OriginGoalID = testutil.StrPtr("g-1")
	require.NoError(t, blocks.Create(ctx, b))

	got, err := blocks.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, domain.OriginFixed, got.Origin)
	assert.Equal(t, b.Start.UTC(), got.Start)
	assert.Equal(t, b.End.UTC(), got.End)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, "alice", *got.OwnerID)
	require.NotNil(t, got.OriginGoalID)
	assert.Equal(t, "g-1", *got.OriginGoalID)
}

func TestBlockRepo_ListBySchedule_OrderedAndLiveOnly(t *testing.T) {
	_, blocks, schedule := newBlockFixture(t)
	ctx := context.Background()

	late := testutil.NewTestBlock(schedule.ID, nil, domain.OriginManual, 3, 9, 10)
	early := testutil.NewTestBlock(schedule.ID, nil, domain.OriginManual, 1, 9, 10)
	gone := testutil.NewTestBlock(schedule.ID, nil, domain.OriginGenerated, 2, 9, 10)
	require.NoError(t, blocks.Create(ctx, late))
	require.NoError(t, blocks.Create(ctx, early))
	require.NoError(t, blocks.Create(ctx, gone))
	require.NoError(t, blocks.SoftDelete(ctx, gone.ID))

	got, err := blocks.ListBySchedule(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID, "ordered by start time")
	assert.Equal(t, late.ID, got[1].ID)
}

func TestBlockRepo_SoftDeleteMany(t *testing.T) {
	_, blocks, schedule := newBlockFixture(t)
	ctx := context.Background()

	keep := testutil.NewTestBlock(schedule.ID, nil, domain.OriginManual, 1, 9, 10)
	a := testutil.NewTestBlock(schedule.ID, nil, domain.OriginGenerated, 2, 9, 10)
	b := testutil.NewTestBlock(schedule.ID, nil, domain.OriginFixed, 3, 9, 10)
	for _, blk := range []*domain.TimeBlock{keep, a, b} {
		require.NoError(t, blocks.Create(ctx, blk))
	}

	require.NoError(t, blocks.SoftDeleteMany(ctx, []string{a.ID, b.ID}))

	got, err := blocks.ListBySchedule(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}

func TestBlockRepo_SoftDeleteMany_EmptyIsNoop(t *testing.T) {
	_, blocks, _ := newBlockFixture(t)
	assert.NoError(t, blocks.SoftDeleteMany(context.Background(), nil))
}

func TestBlockRepo_UpdateSoftDeleted(t *testing.T) {
	_, blocks, schedule := newBlockFixture(t)
	ctx := context.Background()

	b := testutil.NewTestBlock(schedule.ID, nil, domain.OriginManual, 1, 9, 10)
	require.NoError(t, blocks.Create(ctx, b))
	require.NoError(t, blocks.SoftDelete(ctx, b.ID))

	b.Title = "Zombie"
	assert.ErrorIs(t, blocks.Update(ctx, b), domain.ErrNotFound)
}
