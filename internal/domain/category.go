package domain

import "time"

// ServiceLevel holds response/resolution targets in hours.
type ServiceLevel struct {
	ResponseHours   int
	ResolutionHours int
}

// CategoryConfig is admin-owned reference data consumed read-only by the
// categorization engine.
type CategoryConfig struct {
	ID               string
	Name             ComplaintCategory
	Description      *string
	AgencyResponsible string
	ContactEmail     *string
	ContactPhone     *string
	Subcategories    []string
	ServiceLevel     ServiceLevel
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
