package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FamilyMember is a person in the household.
type FamilyMember struct {
	ID        string
	Name      string
	Role      MemberRole
	Age       *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks member fields. Children must carry an age.
func (m *FamilyMember) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if !ValidMemberRoles[string(m.Role)] {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, m.Role)
	}
	if m.Role == RoleChild && m.Age == nil {
		return fmt.Errorf("%w: child members require an age", ErrInvalidInput)
	}
	if m.Age != nil && (*m.Age < 0 || *m.Age > 130) {
		return fmt.Errorf("%w: age %d out of range", ErrInvalidInput, *m.Age)
	}
	return nil
}

// SortMembersForDisplay orders members into the fixed display order used by
// the grid: adults (primary and co-parent) alphabetically by name, then
// children by descending age, ties broken by name. The input is not mutated.
func SortMembersForDisplay(members []FamilyMember) []FamilyMember {
	sorted := make([]FamilyMember, len(members))
	copy(sorted, members)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aChild := a.Role == RoleChild
		bChild := b.Role == RoleChild
		if aChild != bChild {
			return !aChild
		}
		if aChild {
			aAge, bAge := 0, 0
			if a.Age != nil {
				aAge = *a.Age
			}
			if b.Age != nil {
				bAge = *b.Age
			}
			if aAge != bAge {
				return aAge > bAge
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return sorted
}
