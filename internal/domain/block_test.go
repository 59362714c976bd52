package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func blockAt(owner *string, shared bool, startH, endH int) *TimeBlock {
	return &TimeBlock{
		Title:    "b",
		Category: CategoryActivity,
		Start:    monday.Add(time.Duration(startH) * time.Hour),
		End:      monday.Add(time.Duration(endH) * time.Hour),
		OwnerID:  owner,
		IsShared: shared,
		Origin:   OriginManual,
	}
}

func TestTimeBlock_Validate(t *testing.T) {
	b := blockAt(strPtr("alice"), false, 9, 10)
	require.NoError(t, b.Validate())

	bad := blockAt(strPtr("alice"), false, 10, 10)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = blockAt(strPtr("alice"), false, 11, 10)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = blockAt(strPtr("alice"), true, 9, 10)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput, "shared with owner")

	bad = blockAt(nil, false, 9, 10)
	bad.Title = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = blockAt(nil, false, 9, 10)
	bad.Category = "chores"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}

func TestTimeBlock_ConflictsWith(t *testing.T) {
	alice := strPtr("alice")
	bob := strPtr("bob")

	// Same owner, overlapping.
	assert.True(t, blockAt(alice, false, 9, 11).ConflictsWith(blockAt(alice, false, 10, 12)))

	// Same owner, touching endpoints only.
	assert.False(t, blockAt(alice, false, 9, 10).ConflictsWith(blockAt(alice, false, 10, 11)))

	// Different owners never conflict.
	assert.False(t, blockAt(alice, false, 9, 11).ConflictsWith(blockAt(bob, false, 9, 11)))

	// Shared blocks never conflict, even with full overlap.
	assert.False(t, blockAt(nil, true, 9, 11).ConflictsWith(blockAt(alice, false, 9, 11)))
	assert.False(t, blockAt(alice, false, 9, 11).ConflictsWith(blockAt(nil, true, 9, 11)))

	// Ownerless non-shared blocks are exempt too.
	assert.False(t, blockAt(nil, false, 9, 11).ConflictsWith(blockAt(nil, false, 9, 11)))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryWork, NormalizeCategory("work"))
	assert.Equal(t, CategoryMeal, NormalizeCategory("meal"))
	assert.Equal(t, CategoryOther, NormalizeCategory("homework"))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
}

func TestBlockOrigin_Precedence(t *testing.T) {
	assert.Greater(t, OriginManual.Precedence(), OriginFixed.Precedence())
	assert.Greater(t, OriginFixed.Precedence(), OriginGenerated.Precedence())
}
