package domain

import "time"

// Agency represents a municipal agency responsible for one or more categories.
type Agency struct {
	ID           string
	Name         string
	Categories   []string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
