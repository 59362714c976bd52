package service

import (
	"context"
	"testing"
	"time"

	"hearthplan/internal/domain"
	"hearthplan/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockService_Create_ForcesManualOrigin(t *testing.T) {
	repos := setupRepos(t)
	svc := NewBlockService(repos.blocks, repos.schedules)
	ctx := context.Background()

	schedule := testutil.NewTestSchedule("household")
	require.NoError(t, repos.schedules.Create(ctx, schedule))

	b := &domain.TimeBlock{
		ScheduleID: schedule.ID,
		Title:      "Dentist",
		Category:   domain.CategoryOther,
		Start:      testutil.Monday.Add(9 * time.Hour),
		End:        testutil.Monday.Add(10 * time.Hour),
		Origin:     domain.OriginGenerated, // caller cannot smuggle an origin
	}
	require.NoError(t, svc.Create(ctx, b))
	assert.Equal(t, domain.OriginManual, b.Origin)
	assert.NotEmpty(t, b.ID)
}

func TestBlockService_Create_RequiresExistingSchedule(t *testing.T) {
	repos := setupRepos(t)
	svc := NewBlockService(repos.blocks, repos.schedules)

	err := svc.Create(context.Background(), &domain.TimeBlock{
		ScheduleID: "missing",
		Title:      "Dentist",
		Category:   domain.CategoryOther,
		Start:      testutil.Monday.Add(9 * time.Hour),
		End:        testutil.Monday.Add(10 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlockService_Update_ClaimsBlockAsManual(t *testing.T) {
	repos := setupRepos(t)
	svc := NewBlockService(repos.blocks, repos.schedules)
	ctx := context.Background()

	schedule := testutil.NewTestSchedule("household")
	require.NoError(t, repos.schedules.Create(ctx, schedule))
	generated := testutil.NewTestBlock(schedule.ID, testutil.StrPtr("alice"), domain.OriginGenerated, 2, 18, 19)
	require.NoError(t, repos.blocks.Create(ctx, generated))

	generated.Title = "Evening run (moved)"
	require.NoError(t, svc.Update(ctx, generated))

	got, err := repos.blocks.GetByID(ctx, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OriginManual, got.Origin, "edited block leaves the regeneration pool")
	assert.Equal(t, "Evening run (moved)", got.Title)
}

func TestBlockService_Delete_SoftDeletes(t *testing.T) {
	repos := setupRepos(t)
	svc := NewBlockService(repos.blocks, repos.schedules)
	ctx := context.Background()

	schedule := testutil.NewTestSchedule("household")
	require.NoError(t, repos.schedules.Create(ctx, schedule))
	b := testutil.NewTestBlock(schedule.ID, nil, domain.OriginManual, 1, 9, 10)
	require.NoError(t, repos.blocks.Create(ctx, b))

	require.NoError(t, svc.Delete(ctx, b.ID))

	_, err := svc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	blocks, err := svc.ListBySchedule(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
