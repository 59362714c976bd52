package domain

// BlockCategory classifies what a time block is for.
type BlockCategory string

const (
	CategoryWork     BlockCategory = "work"
	CategoryActivity BlockCategory = "activity"
	CategoryMeal     BlockCategory = "meal"
	CategoryOther    BlockCategory = "other"
)

// ValidBlockCategories is the canonical set of accepted category strings.
var ValidBlockCategories = map[string]bool{
	"work": true, "activity": true, "meal": true, "other": true,
}

// NormalizeCategory maps an untrusted category string onto the closed set,
// falling back to CategoryOther for anything unknown.
func NormalizeCategory(s string) BlockCategory {
	if ValidBlockCategories[s] {
		return BlockCategory(s)
	}
	return CategoryOther
}

// BlockOrigin records how a block came to exist. It drives reconciliation
// precedence: manual > fixed_commitment > ai_generated.
type BlockOrigin string

const (
	OriginManual    BlockOrigin = "manual"
	OriginFixed     BlockOrigin = "fixed_commitment"
	OriginGenerated BlockOrigin = "ai_generated"
)

// Precedence orders origins for conflict resolution; higher wins.
func (o BlockOrigin) Precedence() int {
	switch o {
	case OriginManual:
		return 3
	case OriginFixed:
		return 2
	case OriginGenerated:
		return 1
	default:
		return 0
	}
}

// MemberRole classifies a family member for display ordering and validation.
type MemberRole string

const (
	RolePrimary  MemberRole = "primary"
	RoleCoParent MemberRole = "co_parent"
	RoleChild    MemberRole = "child"
)

// ValidMemberRoles is the canonical set of accepted role strings.
var ValidMemberRoles = map[string]bool{
	"primary": true, "co_parent": true, "child": true,
}

// GoalPriority ranks how strongly the generator should favor a goal.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

// TimeOfDay is a coarse daypart preference on a recurring goal.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// Strategy is the generation strategy hint passed through to the proposal
// generator. Opaque to the reconciliation engine.
type Strategy string

const (
	StrategyBalanced        Strategy = "balanced"
	StrategyEnergyOptimized Strategy = "energy_optimized"
	StrategyGoalFocused     Strategy = "goal_focused"
)

// ValidStrategies is the canonical set of accepted strategy strings.
var ValidStrategies = map[string]bool{
	"balanced": true, "energy_optimized": true, "goal_focused": true,
}
