package domain

import "time"

// Schedule is one household member's plan for a single week, identified by
// its owner and the Monday the week starts on.
type Schedule struct {
	ID        string
	OwnerID   string
	WeekStart time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
