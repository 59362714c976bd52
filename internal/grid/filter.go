package grid

// Filter selects which activities stay fully visible. Filtering never
// removes anything from the grid: non-matching activities only get their
// IsDimmed flag set, so client styling can fade them without reflowing.
type Filter struct {
	// MemberID keeps activities owned by this member (and shared ones) lit.
	MemberID string
	// SharedOnly keeps only shared activities lit.
	SharedOnly bool
}

func (f Filter) matches(a *Activity) bool {
	if f.SharedOnly {
		return a.IsShared
	}
	if f.MemberID != "" {
		return a.IsShared || (a.OwnerID != nil && *a.OwnerID == f.MemberID)
	}
	return true
}

// ApplyFilter recomputes every activity's IsDimmed flag. The zero Filter
// clears all dimming.
func (g *Grid) ApplyFilter(f Filter) {
	for r := range g.Rows {
		for c := range g.Rows[r].Cells {
			for i := range g.Rows[r].Cells[c].Activities {
				a := &g.Rows[r].Cells[c].Activities[i]
				a.IsDimmed = !f.matches(a)
			}
		}
	}
}
