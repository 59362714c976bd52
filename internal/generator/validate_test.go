package generator

import (
	"testing"

	"hearthplan/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMembers = []domain.FamilyMember{
	{ID: "m-alice", Name: "Alice", Role: domain.RolePrimary},
	{ID: "m-bob", Name: "Bob", Role: domain.RoleCoParent},
}

var testGoals = []domain.RecurringGoal{
	{ID: "g-run", MemberID: "m-alice", Name: "Running"},
}

func validProposal() Proposal {
	return Proposal{
		Title:     "Morning run",
		Category:  "activity",
		Day:       "Monday",
		StartTime: "06:30",
		EndTime:   "07:15",
		OwnerID:   "m-alice",
		GoalID:    "g-run",
	}
}

func TestValidateProposal_Valid(t *testing.T) {
	got, err := ValidateProposal(validProposal(), testMembers, testGoals)
	require.NoError(t, err)

	assert.Equal(t, "Morning run", got.Title)
	assert.Equal(t, domain.CategoryActivity, got.Category)
	assert.Equal(t, 1, got.Day)
	assert.Equal(t, 390, got.StartMin)
	assert.Equal(t, 435, got.EndMin)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, "m-alice", *got.OwnerID)
	require.NotNil(t, got.GoalID)
	assert.Equal(t, "g-run", *got.GoalID)
}

func TestValidateProposal_MissingFields(t *testing.T) {
	p := validProposal()
	p.Title = "  "
	_, err := ValidateProposal(p, testMembers, testGoals)
	assert.Error(t, err)

	p = validProposal()
	p.Day = "Blursday"
	_, err = ValidateProposal(p, testMembers, testGoals)
	assert.Error(t, err)

	p = validProposal()
	p.StartTime = "25:00"
	_, err = ValidateProposal(p, testMembers, testGoals)
	assert.Error(t, err)

	p = validProposal()
	p.EndTime = p.StartTime
	_, err = ValidateProposal(p, testMembers, testGoals)
	assert.Error(t, err)
}

func TestValidateProposal_UnknownCategoryNormalized(t *testing.T) {
	p := validProposal()
	p.Category = "Exercise"
	got, err := ValidateProposal(p, testMembers, testGoals)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, got.Category)
}

func TestValidateProposal_UnknownOwnerRejected(t *testing.T) {
	p := validProposal()
	p.OwnerID = "m-nobody"
	_, err := ValidateProposal(p, testMembers, testGoals)
	assert.Error(t, err)
}

func TestValidateProposal_OwnerResolvedByName(t *testing.T) {
	p := validProposal()
	p.OwnerID = "alice"
	got, err := ValidateProposal(p, testMembers, testGoals)
	require.NoError(t, err)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, "m-alice", *got.OwnerID)
}

func TestValidateProposal_SharedDropsOwner(t *testing.T) {
	p := validProposal()
	p.IsShared = true
	p.OwnerID = "m-alice"
	got, err := ValidateProposal(p, testMembers, testGoals)
	require.NoError(t, err)
	assert.True(t, got.IsShared)
	assert.Nil(t, got.OwnerID)
}

func TestValidateProposal_UnknownGoalDropped(t *testing.T) {
	p := validProposal()
	p.GoalID = "g-invented"
	got, err := ValidateProposal(p, testMembers, testGoals)
	require.NoError(t, err)
	assert.Nil(t, got.GoalID)
}

func TestValidateProposal_ThreeLetterDay(t *testing.T) {
	p := validProposal()
	p.Day = "sun"
	got, err := ValidateProposal(p, testMembers, testGoals)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Day)
}
